package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/weekly-signup/internal/domain"
	"github.com/diegoclair/weekly-signup/internal/domain/entity"
	"github.com/diegoclair/weekly-signup/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_validateSignup(t *testing.T) {
	tests := []struct {
		name       string
		inName     string
		inStatus   string
		want       entity.Signup
		wantReason string
	}{
		{name: "Should accept ja", inName: "Anna", inStatus: "ja", want: entity.Signup{Name: "Anna", Status: "ja"}},
		{name: "Should accept vielleicht", inName: "Anna", inStatus: "vielleicht", want: entity.Signup{Name: "Anna", Status: "vielleicht"}},
		{name: "Should accept nein", inName: "Anna", inStatus: "nein", want: entity.Signup{Name: "Anna", Status: "nein"}},
		{name: "Should trim the name", inName: "  Anna Lena ", inStatus: "ja", want: entity.Signup{Name: "Anna Lena", Status: "ja"}},
		{name: "Should reject empty name", inName: "", inStatus: "ja", wantReason: domain.ReasonMissingFields},
		{name: "Should reject blank name", inName: "   ", inStatus: "ja", wantReason: domain.ReasonMissingFields},
		{name: "Should reject empty status", inName: "Anna", inStatus: "", wantReason: domain.ReasonMissingFields},
		{name: "Should reject both empty", inName: "", inStatus: "", wantReason: domain.ReasonMissingFields},
		{name: "Should reject unknown status", inName: "Anna", inStatus: "yes", wantReason: domain.ReasonInvalidStatus},
		{name: "Should reject status with different case", inName: "Anna", inStatus: "Ja", wantReason: domain.ReasonInvalidStatus},
		{name: "Should reject empty name before invalid status", inName: "", inStatus: "maybe", wantReason: domain.ReasonMissingFields},
		{name: "Should reject comma in name", inName: "Doe, Jane", inStatus: "ja", wantReason: domain.ReasonInvalidName},
		{name: "Should reject newline in name", inName: "Anna\nBea", inStatus: "ja", wantReason: domain.ReasonInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateSignup(tt.inName, tt.inStatus)
			if tt.wantReason != "" {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantReason, vErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_signupService_Submit(t *testing.T) {
	type args struct {
		name   string
		status string
	}

	tests := []struct {
		name       string
		args       args
		buildMocks func(ctx context.Context, m allMocks, args args)
		checkErr   func(t *testing.T, err error)
	}{
		{
			name: "Should append to the current bucket",
			args: args{name: "Anna", status: "ja"},
			buildMocks: func(ctx context.Context, m allMocks, args args) {
				m.mockSignupRepo.EXPECT().
					Append(ctx, "20240107", entity.Signup{Name: "Anna", Status: "ja"}).
					Return(nil).Times(1)
			},
			checkErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Should not touch the store on missing fields",
			args: args{name: "", status: "ja"},
			buildMocks: func(ctx context.Context, m allMocks, args args) {
				m.mockSignupRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkErr: func(t *testing.T, err error) {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, domain.ReasonMissingFields, vErr.Reason)
			},
		},
		{
			name: "Should not touch the store on invalid status",
			args: args{name: "Anna", status: "vielleicht?"},
			buildMocks: func(ctx context.Context, m allMocks, args args) {
				m.mockSignupRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkErr: func(t *testing.T, err error) {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, domain.ReasonInvalidStatus, vErr.Reason)
			},
		},
		{
			name: "Should wrap store failures as storage errors",
			args: args{name: "Anna", status: "nein"},
			buildMocks: func(ctx context.Context, m allMocks, args args) {
				m.mockSignupRepo.EXPECT().
					Append(ctx, "20240107", entity.Signup{Name: "Anna", Status: "nein"}).
					Return(errors.New("disk full")).Times(1)
			},
			checkErr: func(t *testing.T, err error) {
				var sErr *domain.StorageError
				require.ErrorAs(t, err, &sErr)
				assert.Equal(t, "append", sErr.Op)
				assert.EqualError(t, errors.Unwrap(err), "disk full")

				var vErr *domain.ValidationError
				assert.False(t, errors.As(err, &vErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			ctx := context.Background()
			tt.buildMocks(ctx, m, tt.args)

			s := newSignup(m.mockSignupRepo, fixedResolver(wednesday), m.mockPause)
			tt.checkErr(t, s.Submit(ctx, tt.args.name, tt.args.status))
		})
	}
}

func Test_signupService_List(t *testing.T) {
	tests := []struct {
		name       string
		buildMocks func(ctx context.Context, m allMocks)
		want       *entity.BucketView
		wantErr    bool
	}{
		{
			name: "Should return the pause message without reading the store",
			buildMocks: func(ctx context.Context, m allMocks) {
				m.mockPause.EXPECT().Message(ctx).Return("Sommerpause", true, nil).Times(1)
				m.mockSignupRepo.EXPECT().ReadAll(gomock.Any(), gomock.Any()).Times(0)
			},
			want: &entity.BucketView{Paused: true, Message: "Sommerpause"},
		},
		{
			name: "Should return the current bucket when not paused",
			buildMocks: func(ctx context.Context, m allMocks) {
				m.mockPause.EXPECT().Message(ctx).Return("", false, nil).Times(1)
				m.mockSignupRepo.EXPECT().ReadAll(ctx, "20240107").
					Return(map[string]string{"Anna": "ja"}, nil).Times(1)
			},
			want: &entity.BucketView{
				Date:    "20240107",
				Display: "7.1.2024",
				Signups: map[string]string{"Anna": "ja"},
			},
		},
		{
			name: "Should ignore an unreadable pause flag",
			buildMocks: func(ctx context.Context, m allMocks) {
				m.mockPause.EXPECT().Message(ctx).Return("", false, errors.New("permission denied")).Times(1)
				m.mockSignupRepo.EXPECT().ReadAll(ctx, "20240107").Return(nil, nil).Times(1)
			},
			want: &entity.BucketView{
				Date:    "20240107",
				Display: "7.1.2024",
				Signups: map[string]string{},
			},
		},
		{
			name: "Should return storage error when the store fails",
			buildMocks: func(ctx context.Context, m allMocks) {
				m.mockPause.EXPECT().Message(ctx).Return("", false, nil).Times(1)
				m.mockSignupRepo.EXPECT().ReadAll(ctx, "20240107").
					Return(nil, errors.New("io error")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			ctx := context.Background()
			tt.buildMocks(ctx, m)

			s := newSignup(m.mockSignupRepo, fixedResolver(wednesday), m.mockPause)
			got, err := s.List(ctx)
			if tt.wantErr {
				var sErr *domain.StorageError
				require.ErrorAs(t, err, &sErr)
				assert.Equal(t, "read", sErr.Op)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_signupService_List_NilPauseSource(t *testing.T) {
	s := newSignup(memory.New(), fixedResolver(wednesday), nil)

	view, err := s.List(context.Background())
	require.NoError(t, err)
	assert.False(t, view.Paused)
	assert.Equal(t, "20240107", view.Date)
	assert.Empty(t, view.Signups)
}

func Test_signupService_SubmitThenList(t *testing.T) {
	ctx := context.Background()
	s := newSignup(memory.New(), fixedResolver(wednesday), nil)

	require.NoError(t, s.Submit(ctx, "Anna", "ja"))
	require.NoError(t, s.Submit(ctx, "Bea", "nein"))

	view, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Anna": "ja", "Bea": "nein"}, view.Signups)

	require.NoError(t, s.Submit(ctx, "Anna", "vielleicht"))

	view, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Anna": "vielleicht", "Bea": "nein"}, view.Signups)
}

func Test_signupService_BucketRollover(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	now := time.Date(2024, 1, 7, 14, 0, 0, 0, time.UTC) // Sunday before cutoff
	s := newSignup(repo, fixedResolver(now), nil)
	require.NoError(t, s.Submit(ctx, "Anna", "ja"))

	now = time.Date(2024, 1, 7, 16, 0, 0, 0, time.UTC) // same Sunday after cutoff
	s = newSignup(repo, fixedResolver(now), nil)

	view, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20240114", view.Date)
	assert.Empty(t, view.Signups)

	previous, err := s.ListBucket(ctx, "20240107")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Anna": "ja"}, previous)
}
