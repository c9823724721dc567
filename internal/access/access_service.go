package access

import (
	"context"
	"strings"

	accesserrors "github.com/JSON-FX/lgu-sso/internal/access/errors"
	"github.com/JSON-FX/lgu-sso/internal/audit"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Grant(ctx context.Context, employeeUUID, applicationUUID, role string) (GrantResponse, error)
	UpdateRole(ctx context.Context, employeeUUID, applicationUUID, role string) (GrantResponse, error)
	Revoke(ctx context.Context, employeeUUID, applicationUUID string) error
	ListByEmployee(ctx context.Context, employeeUUID string) ([]EmployeeApplicationResponse, error)
	ListByApplication(ctx context.Context, applicationUUID string) ([]ApplicationEmployeeResponse, error)
	HasSuperAdmin(ctx context.Context, employeeUUID string) (bool, error)
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

func (s *service) Grant(ctx context.Context, employeeUUID, applicationUUID, role string) (GrantResponse, error) {
	empID, appID, err := s.parsePair(employeeUUID, applicationUUID)
	if err != nil {
		return GrantResponse{}, err
	}

	exists, err := s.repo.EmployeeExists(ctx, empID)
	if err != nil {
		return GrantResponse{}, err
	}
	if !exists {
		return GrantResponse{}, accesserrors.ErrEmployeeNotFound
	}

	appExists, appActive, err := s.repo.ApplicationState(ctx, appID)
	if err != nil {
		return GrantResponse{}, err
	}
	if !appExists {
		return GrantResponse{}, accesserrors.ErrApplicationNotFound
	}
	if !appActive {
		return GrantResponse{}, accesserrors.ErrApplicationInactive
	}

	grant := &AccessGrant{
		EmployeeUUID:    empID,
		ApplicationUUID: appID,
		Role:            role,
	}
	if err := s.repo.Insert(ctx, grant); err != nil {
		return GrantResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionAccessGranted,
		EmployeeUUID:    &empID,
		ApplicationUUID: &appID,
		Metadata:        map[string]any{"role": role},
	})

	return GrantResponse{
		EmployeeUUID:    empID.String(),
		ApplicationUUID: appID.String(),
		Role:            role,
	}, nil
}

func (s *service) UpdateRole(ctx context.Context, employeeUUID, applicationUUID, role string) (GrantResponse, error) {
	empID, appID, err := s.parsePair(employeeUUID, applicationUUID)
	if err != nil {
		return GrantResponse{}, err
	}

	current, err := s.repo.Find(ctx, empID, appID)
	if err != nil {
		return GrantResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.UpdateRole(ctx, empID, appID, role); err != nil {
		return GrantResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionRoleUpdated,
		EmployeeUUID:    &empID,
		ApplicationUUID: &appID,
		Metadata:        map[string]any{"old_role": current.Role, "new_role": role},
	})

	return GrantResponse{
		EmployeeUUID:    empID.String(),
		ApplicationUUID: appID.String(),
		Role:            role,
	}, nil
}

func (s *service) Revoke(ctx context.Context, employeeUUID, applicationUUID string) error {
	empID, appID, err := s.parsePair(employeeUUID, applicationUUID)
	if err != nil {
		return err
	}

	current, err := s.repo.Find(ctx, empID, appID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, empID, appID); err != nil {
		return mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionAccessRevoked,
		EmployeeUUID:    &empID,
		ApplicationUUID: &appID,
		Metadata:        map[string]any{"role": current.Role},
	})

	return nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeUUID string) ([]EmployeeApplicationResponse, error) {
	empID, err := uuid.Parse(employeeUUID)
	if err != nil {
		return nil, accesserrors.ErrInvalidEmployeeUUID
	}

	exists, err := s.repo.EmployeeExists(ctx, empID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, accesserrors.ErrEmployeeNotFound
	}

	rows, err := s.repo.ListByEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeApplicationResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, EmployeeApplicationResponse{
			UUID: row.ApplicationUUID.String(),
			Name: row.ApplicationName,
			Role: row.Role,
		})
	}
	return responses, nil
}

func (s *service) ListByApplication(ctx context.Context, applicationUUID string) ([]ApplicationEmployeeResponse, error) {
	appID, err := uuid.Parse(applicationUUID)
	if err != nil {
		return nil, accesserrors.ErrInvalidApplicationUUID
	}

	exists, _, err := s.repo.ApplicationState(ctx, appID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, accesserrors.ErrApplicationNotFound
	}

	rows, err := s.repo.ListByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}

	responses := make([]ApplicationEmployeeResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, ApplicationEmployeeResponse{
			UUID:      row.EmployeeUUID.String(),
			FirstName: row.FirstName,
			LastName:  row.LastName,
			FullName:  fullName(row),
			Initials:  initials(row),
			Email:     row.Email,
			Role:      row.Role,
		})
	}
	return responses, nil
}

func (s *service) HasSuperAdmin(ctx context.Context, employeeUUID string) (bool, error) {
	empID, err := uuid.Parse(employeeUUID)
	if err != nil {
		return false, accesserrors.ErrInvalidEmployeeUUID
	}
	return s.repo.HasSuperAdmin(ctx, empID)
}

func (s *service) parsePair(employeeUUID, applicationUUID string) (uuid.UUID, uuid.UUID, error) {
	empID, err := uuid.Parse(employeeUUID)
	if err != nil {
		return uuid.Nil, uuid.Nil, accesserrors.ErrInvalidEmployeeUUID
	}
	appID, err := uuid.Parse(applicationUUID)
	if err != nil {
		return uuid.Nil, uuid.Nil, accesserrors.ErrInvalidApplicationUUID
	}
	return empID, appID, nil
}

func fullName(row ApplicationGrantRow) string {
	parts := make([]string, 0, 4)
	parts = append(parts, row.FirstName)
	if row.MiddleName != nil && *row.MiddleName != "" {
		parts = append(parts, *row.MiddleName)
	}
	parts = append(parts, row.LastName)
	if row.Suffix != nil && *row.Suffix != "" {
		parts = append(parts, *row.Suffix)
	}
	return strings.Join(parts, " ")
}

func initials(row ApplicationGrantRow) string {
	letters := make([]string, 0, 3)
	if row.FirstName != "" {
		letters = append(letters, string([]rune(row.FirstName)[0]))
	}
	if row.MiddleName != nil && *row.MiddleName != "" {
		letters = append(letters, string([]rune(*row.MiddleName)[0]))
	}
	if row.LastName != "" {
		letters = append(letters, string([]rune(row.LastName)[0]))
	}
	return strings.Join(letters, ".")
}
