package application_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/JSON-FX/lgu-sso/internal/application"
	applicationerrors "github.com/JSON-FX/lgu-sso/internal/application/errors"

	applicationMock "github.com/JSON-FX/lgu-sso/internal/application/mock"
	auditMock "github.com/JSON-FX/lgu-sso/internal/audit/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type applicationDeps struct {
	service  application.Service
	repo     *applicationMock.MockRepository
	recorder *auditMock.MockRecorder
}

func setupApplicationTest(t *testing.T) *applicationDeps {
	ctrl := gomock.NewController(t)

	repo := applicationMock.NewMockRepository(ctrl)
	recorder := auditMock.NewMockRecorder(ctrl)

	svc := application.NewService(repo, recorder, zap.NewNop())

	return &applicationDeps{
		service:  svc,
		repo:     repo,
		recorder: recorder,
	}
}

var clientIDPattern = regexp.MustCompile(`^payroll-portal-[0-9a-f]{8}$`)

func clientIDCollision() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "uq_applications_client_id"}
}

func TestApplicationService_Create(t *testing.T) {
	ctx := context.Background()

	req := application.CreateApplicationRequest{
		Name:               "Payroll Portal",
		RedirectURIs:       []string{"https://payroll.lgu.gov.ph/callback"},
		RateLimitPerMinute: 60,
	}

	t.Run("success - slugged client_id and one-time secret", func(t *testing.T) {
		deps := setupApplicationTest(t)

		var stored application.Application
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app *application.Application) error {
				stored = *app
				return nil
			})
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Regexp(t, clientIDPattern, stored.ClientID)
		assert.Equal(t, stored.ClientID, resp.ClientID)
		assert.True(t, resp.IsActive)
		assert.NotEmpty(t, resp.ClientSecret)

		// only the hash is persisted, and the returned secret matches it
		assert.NotContains(t, stored.ClientSecretHash, resp.ClientSecret)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(stored.ClientSecretHash), []byte(resp.ClientSecret)))
	})

	t.Run("success - regenerates suffix on client_id collision", func(t *testing.T) {
		deps := setupApplicationTest(t)

		seen := make([]string, 0, 2)
		first := deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app *application.Application) error {
				seen = append(seen, app.ClientID)
				return clientIDCollision()
			})
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			After(first).
			DoAndReturn(func(_ context.Context, app *application.Application) error {
				seen = append(seen, app.ClientID)
				return nil
			})
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Len(t, seen, 2)
		assert.NotEqual(t, seen[0], seen[1])
		assert.Equal(t, seen[1], resp.ClientID)
	})

	t.Run("negative - collision retries exhausted", func(t *testing.T) {
		deps := setupApplicationTest(t)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(clientIDCollision()).
			Times(5)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, applicationerrors.ErrClientIDExhausted)
	})

	t.Run("negative - relative redirect URI rejected", func(t *testing.T) {
		deps := setupApplicationTest(t)

		bad := req
		bad.RedirectURIs = []string{"/callback"}

		_, err := deps.service.Create(ctx, bad)

		assert.ErrorIs(t, err, applicationerrors.ErrInvalidRedirectURI)
	})

	t.Run("negative - database error surfaces", func(t *testing.T) {
		deps := setupApplicationTest(t)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("database connection lost"))

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database connection lost")
	})
}

func TestApplicationService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New()
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id.String()).
			Return(&application.Application{
				UUID:     id,
				Name:     "Payroll Portal",
				ClientID: "payroll-portal-a1b2c3d4",
				IsActive: true,
			}, nil)

		resp, err := deps.service.Get(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.UUID)
		assert.Equal(t, "payroll-portal-a1b2c3d4", resp.ClientID)
	})

	t.Run("negative - malformed uuid", func(t *testing.T) {
		deps := setupApplicationTest(t)

		_, err := deps.service.Get(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, applicationerrors.ErrInvalidApplicationUUID)
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Get(ctx, id)

		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}

func TestApplicationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success - deactivate without touching other fields", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New()
		inactive := false
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id.String()).
			Return(&application.Application{
				UUID:               id,
				Name:               "Payroll Portal",
				ClientID:           "payroll-portal-a1b2c3d4",
				RateLimitPerMinute: 60,
				IsActive:           true,
			}, nil)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app *application.Application) error {
				assert.False(t, app.IsActive)
				assert.Equal(t, "Payroll Portal", app.Name)
				assert.Equal(t, 60, app.RateLimitPerMinute)
				return nil
			})
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		resp, err := deps.service.Update(ctx, id.String(), application.UpdateApplicationRequest{IsActive: &inactive})

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("negative - invalid replacement redirect URIs", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New()
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id.String()).
			Return(&application.Application{UUID: id, IsActive: true}, nil)

		uris := []string{"notaurl"}
		_, err := deps.service.Update(ctx, id.String(), application.UpdateApplicationRequest{RedirectURIs: &uris})

		assert.ErrorIs(t, err, applicationerrors.ErrInvalidRedirectURI)
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, application.UpdateApplicationRequest{})

		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}

func TestApplicationService_RegenerateSecret(t *testing.T) {
	ctx := context.Background()

	t.Run("success - old hash replaced in one update", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New()
		oldHash, _ := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id.String()).
			Return(&application.Application{
				UUID:             id,
				ClientID:         "payroll-portal-a1b2c3d4",
				ClientSecretHash: string(oldHash),
				IsActive:         true,
			}, nil)

		var newHash string
		deps.repo.EXPECT().
			UpdateSecretHash(gomock.Any(), id.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) error {
				newHash = hash
				return nil
			})
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		resp, err := deps.service.RegenerateSecret(ctx, id.String())

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ClientSecret)
		assert.NotEqual(t, string(oldHash), newHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(resp.ClientSecret)))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("old-secret")))
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.RegenerateSecret(ctx, id)

		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}

func TestApplicationService_VerifySecret(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	app := &application.Application{
		UUID:             uuid.New(),
		ClientID:         "payroll-portal-a1b2c3d4",
		ClientSecretHash: string(hash),
		IsActive:         true,
	}

	t.Run("success", func(t *testing.T) {
		deps := setupApplicationTest(t)

		deps.repo.EXPECT().
			FindByClientID(gomock.Any(), app.ClientID).
			Return(app, nil)
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		got, err := deps.service.VerifySecret(ctx, app.ClientID, "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, app.UUID, got.UUID)
	})

	t.Run("negative - wrong secret", func(t *testing.T) {
		deps := setupApplicationTest(t)

		deps.repo.EXPECT().
			FindByClientID(gomock.Any(), app.ClientID).
			Return(app, nil)
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		_, err := deps.service.VerifySecret(ctx, app.ClientID, "wrong")

		assert.ErrorIs(t, err, applicationerrors.ErrInvalidClientCredentials)
	})

	t.Run("negative - inactive application fails even with correct secret", func(t *testing.T) {
		deps := setupApplicationTest(t)

		disabled := *app
		disabled.IsActive = false
		deps.repo.EXPECT().
			FindByClientID(gomock.Any(), app.ClientID).
			Return(&disabled, nil)
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		_, err := deps.service.VerifySecret(ctx, app.ClientID, "s3cret")

		assert.ErrorIs(t, err, applicationerrors.ErrInvalidClientCredentials)
	})

	t.Run("negative - unknown client_id", func(t *testing.T) {
		deps := setupApplicationTest(t)

		deps.repo.EXPECT().
			FindByClientID(gomock.Any(), "ghost-client").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.VerifySecret(ctx, "ghost-client", "s3cret")

		assert.ErrorIs(t, err, applicationerrors.ErrInvalidClientCredentials)
	})
}

func TestApplicationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New()
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id.String()).
			Return(&application.Application{UUID: id, ClientID: "payroll-portal-a1b2c3d4"}, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id.String()).Return(nil)
		deps.recorder.EXPECT().Record(gomock.Any(), gomock.Any())

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupApplicationTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().
			FindByUUID(gomock.Any(), id).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}
