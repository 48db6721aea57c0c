package contract

import "context"

// PauseSource tells whether signups are paused and with which message
type PauseSource interface {
	Message(ctx context.Context) (message string, paused bool, err error)
}
