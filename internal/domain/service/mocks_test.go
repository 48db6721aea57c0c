package service

import (
	"testing"
	"time"

	"github.com/diegoclair/weekly-signup/internal/domain/bucket"
	"github.com/diegoclair/weekly-signup/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockSignupRepo  *mocks.MockSignupRepo
	mockPause       *mocks.MockPauseSource
	mockSlackClient *mocks.MockSlackClient
}

// wednesday resolves to bucket 20240107
var wednesday = time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

func fixedResolver(now time.Time) *bucket.Resolver {
	return bucket.NewResolver(time.UTC, 15, func() time.Time { return now })
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockSignupRepo:  mocks.NewMockSignupRepo(ctrl),
		mockPause:       mocks.NewMockPauseSource(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	return
}
