package contract

import "github.com/slack-go/slack"

// SlackClient is the part of the Slack API the summary scheduler uses
type SlackClient interface {
	// PostMessage posts to a channel and returns channel and timestamp
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
