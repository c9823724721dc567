package application

import (
	"context"
	"net/url"
	"time"

	applicationerrors "github.com/JSON-FX/lgu-sso/internal/application/errors"
	"github.com/JSON-FX/lgu-sso/internal/audit"
	"github.com/JSON-FX/lgu-sso/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// clientIDAttempts bounds suffix regeneration on a client_id collision.
const clientIDAttempts = 5

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]ApplicationResponse, error)
	Get(ctx context.Context, uuid string) (ApplicationResponse, error)
	Create(ctx context.Context, req CreateApplicationRequest) (ApplicationWithSecretResponse, error)
	Update(ctx context.Context, uuid string, req UpdateApplicationRequest) (ApplicationResponse, error)
	Delete(ctx context.Context, uuid string) error
	RegenerateSecret(ctx context.Context, uuid string) (RegenerateSecretResponse, error)
	VerifySecret(ctx context.Context, clientID, secret string) (*Application, error)
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) List(ctx context.Context) ([]ApplicationResponse, error) {
	apps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list applications failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ApplicationResponse, len(apps))
	for i, app := range apps {
		resp[i] = mapToResponse(app)
	}

	return resp, nil
}

func (s *service) Get(ctx context.Context, id string) (ApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidApplicationUUID
	}

	app, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*app), nil
}

func (s *service) Create(ctx context.Context, req CreateApplicationRequest) (ApplicationWithSecretResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := validateRedirectURIs(req.RedirectURIs); err != nil {
		return ApplicationWithSecretResponse{}, err
	}

	secret, err := newClientSecret()
	if err != nil {
		l.Error("generate client secret failed", zap.Error(err))
		return ApplicationWithSecretResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		l.Error("hash client secret failed", zap.Error(err))
		return ApplicationWithSecretResponse{}, err
	}

	app := &Application{
		UUID:               uuid.New(),
		Name:               req.Name,
		Description:        req.Description,
		ClientSecretHash:   string(hash),
		RedirectURIs:       req.RedirectURIs,
		RateLimitPerMinute: req.RateLimitPerMinute,
		IsActive:           true,
	}

	// The random suffix keeps first-insert collisions rare; when one does
	// happen the suffix is regenerated, bounded so a broken constraint
	// cannot loop forever.
	var created bool
	for attempt := 1; attempt <= clientIDAttempts; attempt++ {
		app.ClientID, err = newClientID(req.Name)
		if err != nil {
			return ApplicationWithSecretResponse{}, err
		}

		err = s.repo.Create(ctx, app)
		if err == nil {
			created = true
			break
		}
		if !isClientIDCollision(err) {
			l.Error("create application persist failed", zap.Error(err))
			return ApplicationWithSecretResponse{}, mapRepositoryError(err)
		}

		l.Warn("client_id collision, regenerating suffix",
			zap.String("client_id", app.ClientID),
			zap.Int("attempt", attempt),
		)
	}
	if !created {
		l.Error("client_id collisions exhausted retries", zap.String("name", req.Name))
		return ApplicationWithSecretResponse{}, applicationerrors.ErrClientIDExhausted
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionAppCreated,
		ApplicationUUID: &app.UUID,
		Metadata:        map[string]any{"client_id": app.ClientID},
	})

	l.Info("application created",
		zap.String("application_uuid", app.UUID.String()),
		zap.String("client_id", app.ClientID),
	)

	return ApplicationWithSecretResponse{
		ApplicationResponse: mapToResponse(*app),
		ClientSecret:        secret,
	}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateApplicationRequest) (ApplicationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	app, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		app.Name = *req.Name
	}
	if req.Description != nil {
		app.Description = req.Description
	}
	if req.RedirectURIs != nil {
		if err := validateRedirectURIs(*req.RedirectURIs); err != nil {
			return ApplicationResponse{}, err
		}
		app.RedirectURIs = *req.RedirectURIs
	}
	if req.RateLimitPerMinute != nil {
		app.RateLimitPerMinute = *req.RateLimitPerMinute
	}
	if req.IsActive != nil {
		app.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, app); err != nil {
		l.Error("update application persist failed", zap.Error(err))
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionAppUpdated,
		ApplicationUUID: &app.UUID,
	})

	l.Info("application updated", zap.String("application_uuid", app.UUID.String()))
	return mapToResponse(*app), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	app, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("delete application failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionAppDeleted,
		ApplicationUUID: &app.UUID,
		Metadata:        map[string]any{"client_id": app.ClientID},
	})

	l.Info("application deleted", zap.String("application_uuid", id))
	return nil
}

// RegenerateSecret swaps the stored hash in a single UPDATE; the previous
// secret stops verifying the instant the new one commits.
func (s *service) RegenerateSecret(ctx context.Context, id string) (RegenerateSecretResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	app, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return RegenerateSecretResponse{}, mapRepositoryError(err)
	}

	secret, err := newClientSecret()
	if err != nil {
		l.Error("generate client secret failed", zap.Error(err))
		return RegenerateSecretResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		l.Error("hash client secret failed", zap.Error(err))
		return RegenerateSecretResponse{}, err
	}

	if err := s.repo.UpdateSecretHash(ctx, id, string(hash)); err != nil {
		l.Error("update secret hash failed", zap.Error(err))
		return RegenerateSecretResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionAppSecretRegenerated,
		ApplicationUUID: &app.UUID,
		Metadata:        map[string]any{"client_id": app.ClientID},
	})

	l.Info("application secret regenerated", zap.String("application_uuid", id))
	return RegenerateSecretResponse{ClientSecret: secret}, nil
}

// VerifySecret authenticates a client application. Inactive applications
// always fail, regardless of the secret presented.
func (s *service) VerifySecret(ctx context.Context, clientID, secret string) (*Application, error) {
	app, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, applicationerrors.ErrInvalidClientCredentials
	}

	if !app.IsActive {
		s.recordValidation(ctx, app, false)
		return nil, applicationerrors.ErrInvalidClientCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(app.ClientSecretHash), []byte(secret)); err != nil {
		s.recordValidation(ctx, app, false)
		return nil, applicationerrors.ErrInvalidClientCredentials
	}

	s.recordValidation(ctx, app, true)
	return app, nil
}

func (s *service) recordValidation(ctx context.Context, app *Application, ok bool) {
	s.recorder.Record(ctx, audit.Entry{
		Action:          audit.ActionTokenValidate,
		ApplicationUUID: &app.UUID,
		Metadata:        map[string]any{"client_id": app.ClientID, "success": ok},
	})
}

func validateRedirectURIs(uris []string) error {
	if len(uris) == 0 {
		return applicationerrors.ErrInvalidRedirectURI
	}
	for _, raw := range uris {
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return applicationerrors.ErrInvalidRedirectURI
		}
	}
	return nil
}

func mapToResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		UUID:               app.UUID.String(),
		Name:               app.Name,
		Description:        app.Description,
		ClientID:           app.ClientID,
		RedirectURIs:       app.RedirectURIs,
		RateLimitPerMinute: app.RateLimitPerMinute,
		IsActive:           app.IsActive,
		CreatedAt:          app.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          app.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
