package contract

import (
	"context"

	"github.com/diegoclair/weekly-signup/internal/domain/entity"
)

type SignupService interface {
	Submit(ctx context.Context, name, status string) error
	List(ctx context.Context) (*entity.BucketView, error)
	ListBucket(ctx context.Context, bucketKey string) (map[string]string, error)
}
