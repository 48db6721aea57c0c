package service

import (
	"github.com/diegoclair/weekly-signup/internal/domain/bucket"
	"github.com/diegoclair/weekly-signup/internal/domain/contract"
)

type Instance struct {
	Signup    *signupService
	Scheduler *scheduler
}

// NewInstance wires the services. Scheduler stays nil when slackClient is nil.
func NewInstance(repo contract.SignupRepo, resolver *bucket.Resolver, pause contract.PauseSource, slackClient contract.SlackClient, summary SummaryConfig) *Instance {
	signupService := newSignup(repo, resolver, pause)

	instance := &Instance{
		Signup: signupService,
	}
	if slackClient != nil {
		instance.Scheduler = newScheduler(signupService, slackClient, resolver, summary)
	}
	return instance
}
