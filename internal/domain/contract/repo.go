package contract

import (
	"context"

	"github.com/diegoclair/weekly-signup/internal/domain/entity"
)

// SignupRepo is an append-only log of signups per bucket key
type SignupRepo interface {
	// Append adds one record to the bucket, creating the bucket if needed
	Append(ctx context.Context, bucketKey string, signup entity.Signup) error
	// ReadAll returns name -> status for the bucket; later records win.
	// A bucket that was never written yields an empty map and no error.
	ReadAll(ctx context.Context, bucketKey string) (map[string]string, error)
	// Buckets lists the keys of all stored buckets in ascending order
	Buckets(ctx context.Context) ([]string, error)
}
