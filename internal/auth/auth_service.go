package auth

import (
	"context"
	"strings"

	"github.com/JSON-FX/lgu-sso/internal/access"
	"github.com/JSON-FX/lgu-sso/internal/audit"
	autherrors "github.com/JSON-FX/lgu-sso/internal/auth/errors"
	"github.com/JSON-FX/lgu-sso/internal/employee"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login authenticates by email and password, then requires a
	// super_administrator grant somewhere before handing tokens out. Tokens
	// minted before the role check fails are revoked again.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout kills the presented access token's session.
	Logout(ctx context.Context, employeeUUID, jti string) error

	// LogoutAll kills every live session of the employee, on every device.
	LogoutAll(ctx context.Context, employeeUUID string) error

	// Refresh rotates a refresh token: the old jti dies, a fresh pair is
	// issued.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Me returns the authenticated employee with their application grants.
	Me(ctx context.Context, employeeUUID string) (UserResponse, error)
}

type service struct {
	employees employee.Repository
	grants    access.Service
	tokens    TokenStore
	recorder  audit.Recorder
	logger    *zap.Logger
}

func NewService(employees employee.Repository, grants access.Service, tokens TokenStore, recorder audit.Recorder, logger *zap.Logger) Service {
	return &service{
		employees: employees,
		grants:    grants,
		tokens:    tokens,
		recorder:  recorder,
		logger:    logger,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	emp, err := s.employees.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !emp.IsActive {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(ctx, emp.UUID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	isSuperAdmin, err := s.grants.HasSuperAdmin(ctx, emp.UUID.String())
	if err != nil {
		s.teardown(ctx, emp.UUID.String(), pair)
		return LoginResponse{}, err
	}
	if !isSuperAdmin {
		// Valid credentials, wrong role: the just-issued pair must not
		// survive the rejection.
		s.teardown(ctx, emp.UUID.String(), pair)
		return LoginResponse{}, autherrors.ErrSuperAdminRequired
	}

	user, err := s.userResponse(ctx, emp)
	if err != nil {
		s.teardown(ctx, emp.UUID.String(), pair)
		return LoginResponse{}, err
	}

	empUUID := emp.UUID
	s.recorder.Record(ctx, audit.Entry{
		Action:       audit.ActionLogin,
		EmployeeUUID: &empUUID,
		Metadata:     map[string]any{"email": emp.Email},
	})

	return LoginResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	}, nil
}

func (s *service) Logout(ctx context.Context, employeeUUID, jti string) error {
	if err := s.tokens.Revoke(ctx, employeeUUID, jti); err != nil {
		return err
	}

	if emp, err := s.employees.FindByUUID(ctx, employeeUUID); err == nil {
		empUUID := emp.UUID
		s.recorder.Record(ctx, audit.Entry{
			Action:       audit.ActionLogout,
			EmployeeUUID: &empUUID,
		})
	}
	return nil
}

func (s *service) LogoutAll(ctx context.Context, employeeUUID string) error {
	revoked, err := s.tokens.RevokeAll(ctx, employeeUUID)
	if err != nil {
		return err
	}

	if emp, err := s.employees.FindByUUID(ctx, employeeUUID); err == nil {
		empUUID := emp.UUID
		s.recorder.Record(ctx, audit.Entry{
			Action:       audit.ActionLogoutAll,
			EmployeeUUID: &empUUID,
			Metadata:     map[string]any{"sessions_revoked": revoked},
		})
	}
	return nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error) {
	employeeUUID, oldJTI, err := s.tokens.Verify(ctx, refreshToken, TokenTypeRefresh)
	if err != nil {
		return RefreshResponse{}, autherrors.ErrInvalidRefreshToken
	}

	emp, err := s.employees.FindByUUID(ctx, employeeUUID)
	if err != nil || !emp.IsActive {
		// A deactivated employee keeps a syntactically valid refresh token;
		// the rotation is where it stops working.
		return RefreshResponse{}, autherrors.ErrInvalidRefreshToken
	}

	pair, err := s.tokens.Issue(ctx, employeeUUID)
	if err != nil {
		return RefreshResponse{}, err
	}

	if err := s.tokens.Revoke(ctx, employeeUUID, oldJTI); err != nil {
		s.logger.Warn("failed to revoke rotated refresh token",
			zap.String("employee_uuid", employeeUUID),
			zap.Error(err),
		)
	}

	empUUID := emp.UUID
	s.recorder.Record(ctx, audit.Entry{
		Action:       audit.ActionTokenRefresh,
		EmployeeUUID: &empUUID,
	})

	return RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	}, nil
}

func (s *service) Me(ctx context.Context, employeeUUID string) (UserResponse, error) {
	emp, err := s.employees.FindByUUID(ctx, employeeUUID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidToken
	}
	return s.userResponse(ctx, emp)
}

func (s *service) userResponse(ctx context.Context, emp *employee.Employee) (UserResponse, error) {
	applications, err := s.grants.ListByEmployee(ctx, emp.UUID.String())
	if err != nil {
		return UserResponse{}, err
	}

	return UserResponse{
		UUID:         emp.UUID.String(),
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		FullName:     emp.FullName(),
		Initials:     emp.Initials(),
		Email:        emp.Email,
		Applications: applications,
	}, nil
}

func (s *service) teardown(ctx context.Context, employeeUUID string, pair TokenPair) {
	if err := s.tokens.Revoke(ctx, employeeUUID, pair.AccessJTI, pair.RefreshJTI); err != nil {
		s.logger.Warn("failed to tear down rejected login session",
			zap.String("employee_uuid", employeeUUID),
			zap.Error(err),
		)
	}
}
