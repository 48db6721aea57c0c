package service

import (
	"context"
	"log"
	"strings"

	"github.com/diegoclair/weekly-signup/internal/domain"
	"github.com/diegoclair/weekly-signup/internal/domain/bucket"
	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	"github.com/diegoclair/weekly-signup/internal/domain/entity"
	"github.com/diegoclair/weekly-signup/internal/metrics"
)

type signupService struct {
	repo     contract.SignupRepo
	resolver *bucket.Resolver
	pause    contract.PauseSource
}

func newSignup(repo contract.SignupRepo, resolver *bucket.Resolver, pause contract.PauseSource) *signupService {
	return &signupService{
		repo:     repo,
		resolver: resolver,
		pause:    pause,
	}
}

// validateSignup checks a submission before anything touches the store
func validateSignup(name, status string) (entity.Signup, error) {
	name = strings.TrimSpace(name)

	if name == "" || status == "" {
		return entity.Signup{}, &domain.ValidationError{Reason: domain.ReasonMissingFields}
	}
	if !domain.IsValidStatus(status) {
		return entity.Signup{}, &domain.ValidationError{Reason: domain.ReasonInvalidStatus}
	}
	// A comma or line break would split the record when the bucket is read back
	if strings.ContainsAny(name, ",\r\n") {
		return entity.Signup{}, &domain.ValidationError{Reason: domain.ReasonInvalidName}
	}

	return entity.Signup{Name: name, Status: status}, nil
}

func (s *signupService) Submit(ctx context.Context, name, status string) error {
	signup, err := validateSignup(name, status)
	if err != nil {
		metrics.RecordRejection(ctx, err.Error())
		return err
	}

	b := s.resolver.Current()
	if err := s.repo.Append(ctx, b.Key, signup); err != nil {
		log.Printf("Failed to write signup for bucket %s: %v", b.Key, err)
		metrics.RecordStorageError(ctx, "append")
		return &domain.StorageError{Op: "append", Err: err}
	}

	metrics.RecordSubmission(ctx, signup.Status)
	return nil
}

func (s *signupService) List(ctx context.Context) (*entity.BucketView, error) {
	if s.pause != nil {
		message, paused, err := s.pause.Message(ctx)
		if err != nil {
			// Unreadable pause flag: keep serving signups
			log.Printf("Error checking pause flag: %v", err)
		} else if paused {
			return &entity.BucketView{Paused: true, Message: message}, nil
		}
	}

	b := s.resolver.Current()
	signups, err := s.ListBucket(ctx, b.Key)
	if err != nil {
		return nil, err
	}

	return &entity.BucketView{
		Date:    b.Key,
		Display: b.Display,
		Signups: signups,
	}, nil
}

func (s *signupService) ListBucket(ctx context.Context, bucketKey string) (map[string]string, error) {
	signups, err := s.repo.ReadAll(ctx, bucketKey)
	if err != nil {
		log.Printf("Failed to read signups for bucket %s: %v", bucketKey, err)
		metrics.RecordStorageError(ctx, "read")
		return nil, &domain.StorageError{Op: "read", Err: err}
	}
	if signups == nil {
		signups = map[string]string{}
	}
	return signups, nil
}
