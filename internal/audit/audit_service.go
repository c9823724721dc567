package audit

import (
	"context"
	"encoding/json"
	"time"

	auditerrors "github.com/JSON-FX/lgu-sso/internal/audit/errors"

	"go.uber.org/zap"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
	dateLayout     = "2006-01-02"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, query ListAuditLogsQuery) ([]AuditLogResponse, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, query ListAuditLogsQuery) ([]AuditLogResponse, int64, error) {
	filters, err := buildFilters(query)
	if err != nil {
		return nil, 0, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	rows, total, err := s.repo.Query(ctx, filters, page, perPage)
	if err != nil {
		s.logger.Error("query audit logs failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]AuditLogResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapRowToResponse(row)
	}

	return resp, total, nil
}

func buildFilters(query ListAuditLogsQuery) (QueryFilters, error) {
	filters := QueryFilters{
		Action:          query.Action,
		EmployeeUUID:    query.EmployeeUUID,
		ApplicationUUID: query.ApplicationUUID,
	}

	if query.Action != "" && !Action(query.Action).Recognized() {
		return QueryFilters{}, auditerrors.ErrUnknownAction
	}

	if query.From != "" {
		since, err := time.Parse(dateLayout, query.From)
		if err != nil {
			return QueryFilters{}, auditerrors.ErrInvalidDate
		}
		filters.Since = &since
	}

	if query.To != "" {
		to, err := time.Parse(dateLayout, query.To)
		if err != nil {
			return QueryFilters{}, auditerrors.ErrInvalidDate
		}
		// to is inclusive end-of-day: filter on created_at < to + 1 day
		until := to.AddDate(0, 0, 1)
		filters.Until = &until
	}

	return filters, nil
}

func mapRowToResponse(row AuditLogRow) AuditLogResponse {
	resp := AuditLogResponse{
		ID:        row.ID,
		Action:    row.Action,
		IPAddress: row.IPAddress,
		UserAgent: row.UserAgent,
		Metadata:  map[string]any{},
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}

	if len(row.Metadata) > 0 {
		_ = json.Unmarshal(row.Metadata, &resp.Metadata)
	}

	if row.EmployeeUUID != nil {
		resp.Employee = &EmployeeRefResponse{
			UUID:     row.EmployeeUUID.String(),
			FullName: row.EmployeeName,
		}
	}
	if row.ApplicationUUID != nil {
		resp.Application = &ApplicationRefResponse{
			UUID: row.ApplicationUUID.String(),
			Name: row.ApplicationName,
		}
	}

	return resp
}
