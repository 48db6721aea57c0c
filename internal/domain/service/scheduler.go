package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/weekly-signup/internal/domain"
	"github.com/diegoclair/weekly-signup/internal/domain/bucket"
	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	"github.com/diegoclair/weekly-signup/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SummaryConfig controls when and where the weekly signup summary is posted
type SummaryConfig struct {
	ChannelID string
	Time      string // HH:MM in the resolver's location
	Days      []int  // ISO 8601 weekdays
}

type scheduler struct {
	signups     contract.SignupService
	slackClient contract.SlackClient
	resolver    *bucket.Resolver
	config      SummaryConfig
	stopChan    chan struct{}
	running     bool
}

func newScheduler(signups contract.SignupService, slackClient contract.SlackClient, resolver *bucket.Resolver, config SummaryConfig) *scheduler {
	return &scheduler{
		signups:     signups,
		slackClient: slackClient,
		resolver:    resolver,
		config:      config,
		stopChan:    make(chan struct{}),
		running:     false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Summary scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Summary scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	for {
		nextTime := s.calculateNext(s.resolver.Now())
		if nextTime.IsZero() {
			log.Println("No valid summary schedule configured, scheduler idle")
			<-s.stopChan
			return
		}

		log.Printf("Next signup summary at %s", nextTime.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			if err := s.sendSummary(context.Background()); err != nil {
				log.Printf("Failed to send signup summary: %v", err)
			}

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// calculateNext returns the first configured weekday/time strictly after now,
// or the zero time if the configuration is unusable
func (s *scheduler) calculateNext(now time.Time) time.Time {
	// Parse summary time
	parts := strings.Split(s.config.Time, ":")
	if len(parts) != 2 {
		log.Printf("Invalid summary time format: %s", s.config.Time)
		return time.Time{}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		log.Printf("Invalid hour in summary time: %s", parts[0])
		return time.Time{}
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		log.Printf("Invalid minute in summary time: %s", parts[1])
		return time.Time{}
	}

	if len(s.config.Days) == 0 {
		log.Println("No summary days configured")
		return time.Time{}
	}

	activeDaysMap := make(map[int]bool)
	for _, day := range s.config.Days {
		activeDaysMap[day] = true
	}

	// Try today first
	today := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if activeDaysMap[isoWeekday(today)] && today.After(now) {
		return today
	}

	for i := 1; i <= 7; i++ {
		nextDay := time.Date(now.Year(), now.Month(), now.Day()+i, hour, minute, 0, 0, now.Location())
		if activeDaysMap[isoWeekday(nextDay)] {
			return nextDay
		}
	}

	log.Printf("Could not find next summary time for days %v", s.config.Days)
	return time.Time{}
}

// isoWeekday maps Go's Sunday=0 to ISO 8601 Sunday=7
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return domain.Sunday
	}
	return weekday
}

func (s *scheduler) sendSummary(ctx context.Context) error {
	view, err := s.signups.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list signups: %w", err)
	}

	_, _, err = s.slackClient.PostMessage(
		s.config.ChannelID,
		slack.MsgOptionText(formatSummary(view), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	log.Printf("Signup summary sent to channel %s", s.config.ChannelID)
	return nil
}

func formatSummary(view *entity.BucketView) string {
	if view.Paused {
		return fmt.Sprintf("⏸️ *Anmeldung pausiert*\n\n%s", strings.TrimSpace(view.Message))
	}

	byStatus := make(map[string][]string)
	for name, status := range view.Signups {
		byStatus[status] = append(byStatus[status], name)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 *Anmeldungen für Sonntag, %s*\n\n", view.Display))
	for _, status := range domain.ValidStatuses {
		names := byStatus[status]
		sort.Strings(names)

		list := "-"
		if len(names) > 0 {
			list = strings.Join(names, ", ")
		}
		sb.WriteString(fmt.Sprintf("*%s* (%d): %s\n", status, len(names), list))
	}

	return sb.String()
}
