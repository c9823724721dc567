package stats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JSON-FX/lgu-sso/internal/stats"

	"github.com/stretchr/testify/assert"
)

type fakeStatsRepo struct {
	CollectFn func(ctx context.Context, loginsSince time.Time) (stats.Counts, error)
}

func (f *fakeStatsRepo) Collect(ctx context.Context, loginsSince time.Time) (stats.Counts, error) {
	return f.CollectFn(ctx, loginsSince)
}

func TestStatsService_Dashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("success - counts logins over the last seven days", func(t *testing.T) {
		repo := &fakeStatsRepo{}
		repo.CollectFn = func(_ context.Context, loginsSince time.Time) (stats.Counts, error) {
			expected := time.Now().Add(-7 * 24 * time.Hour)
			assert.WithinDuration(t, expected, loginsSince, 5*time.Second)
			return stats.Counts{
				TotalEmployees:     120,
				ActiveEmployees:    115,
				TotalApplications:  8,
				ActiveApplications: 6,
				RecentLogins:       42,
			}, nil
		}

		resp, err := stats.NewService(repo).Dashboard(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(120), resp.TotalEmployees)
		assert.Equal(t, int64(115), resp.ActiveEmployees)
		assert.Equal(t, int64(8), resp.TotalApplications)
		assert.Equal(t, int64(6), resp.ActiveApplications)
		assert.Equal(t, int64(42), resp.RecentLogins)
	})

	t.Run("negative - repository failure", func(t *testing.T) {
		repo := &fakeStatsRepo{}
		repo.CollectFn = func(_ context.Context, _ time.Time) (stats.Counts, error) {
			return stats.Counts{}, errors.New("database connection lost")
		}

		_, err := stats.NewService(repo).Dashboard(ctx)

		assert.Error(t, err)
	})
}
