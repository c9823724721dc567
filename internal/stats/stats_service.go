package stats

import (
	"context"
	"time"
)

// recentLoginWindow is how far back the dashboard counts logins.
const recentLoginWindow = 7 * 24 * time.Hour

type DashboardResponse struct {
	TotalEmployees     int64 `json:"total_employees"`
	ActiveEmployees    int64 `json:"active_employees"`
	TotalApplications  int64 `json:"total_applications"`
	ActiveApplications int64 `json:"active_applications"`
	RecentLogins       int64 `json:"recent_logins"`
}

//go:generate mockgen -source=stats_service.go -destination=mock/stats_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context) (DashboardResponse, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Dashboard(ctx context.Context) (DashboardResponse, error) {
	counts, err := s.repo.Collect(ctx, s.now().Add(-recentLoginWindow))
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		TotalEmployees:     counts.TotalEmployees,
		ActiveEmployees:    counts.ActiveEmployees,
		TotalApplications:  counts.TotalApplications,
		ActiveApplications: counts.ActiveApplications,
		RecentLogins:       counts.RecentLogins,
	}, nil
}
