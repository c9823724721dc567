package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JSON-FX/lgu-sso/internal/auth"
	autherrors "github.com/JSON-FX/lgu-sso/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn     func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	LogoutFn    func(ctx context.Context, employeeUUID, jti string) error
	LogoutAllFn func(ctx context.Context, employeeUUID string) error
	RefreshFn   func(ctx context.Context, refreshToken string) (auth.RefreshResponse, error)
	MeFn        func(ctx context.Context, employeeUUID string) (auth.UserResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.LoginFn(ctx, req)
}

func (f *fakeAuthService) Logout(ctx context.Context, employeeUUID, jti string) error {
	return f.LogoutFn(ctx, employeeUUID, jti)
}

func (f *fakeAuthService) LogoutAll(ctx context.Context, employeeUUID string) error {
	return f.LogoutAllFn(ctx, employeeUUID)
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	return f.RefreshFn(ctx, refreshToken)
}

func (f *fakeAuthService) Me(ctx context.Context, employeeUUID string) (auth.UserResponse, error) {
	return f.MeFn(ctx, employeeUUID)
}

func setupAuthRouter(svc auth.Service, authn gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := auth.NewHandler(svc)

	router.POST("/auth/login", handler.Login)
	router.POST("/auth/refresh", handler.Refresh)
	if authn == nil {
		authn = func(c *gin.Context) { c.Next() }
	}
	router.POST("/auth/logout", authn, handler.Logout)
	router.GET("/auth/me", authn, handler.Me)
	return router
}

func TestHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				assert.Equal(t, "juan.delacruz@lgu.gov.ph", req.Email)
				return auth.LoginResponse{
					User:         auth.UserResponse{FullName: "Juan Dela Cruz"},
					AccessToken:  "access-token",
					RefreshToken: "refresh-token",
					TokenType:    "Bearer",
					ExpiresIn:    900,
				}, nil
			},
		}
		router := setupAuthRouter(svc, nil)

		body, _ := json.Marshal(auth.LoginRequest{Email: "juan.delacruz@lgu.gov.ph", Password: "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].(map[string]any)
		assert.Equal(t, "Bearer", data["token_type"])
		assert.Equal(t, "Juan Dela Cruz", data["user"].(map[string]any)["full_name"])
	})

	t.Run("negative - invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(_ context.Context, _ auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		router := setupAuthRouter(svc, nil)

		body, _ := json.Marshal(auth.LoginRequest{Email: "ghost@lgu.gov.ph", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials.")
	})

	t.Run("negative - not a super administrator", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(_ context.Context, _ auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrSuperAdminRequired
			},
		}
		router := setupAuthRouter(svc, nil)

		body, _ := json.Marshal(auth.LoginRequest{Email: "staff@lgu.gov.ph", Password: "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("negative - malformed email rejected at binding", func(t *testing.T) {
		router := setupAuthRouter(&fakeAuthService{}, nil)

		body := []byte(`{"email":"not-an-email","password":"x"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	employeeUUID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			LogoutFn: func(_ context.Context, emp, jti string) error {
				assert.Equal(t, employeeUUID, emp)
				assert.Equal(t, "jti-1", jti)
				return nil
			},
		}
		authn := func(c *gin.Context) {
			c.Set("employee_uuid", employeeUUID)
			c.Set("token_jti", "jti-1")
			c.Next()
		}
		router := setupAuthRouter(svc, authn)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Logged out.")
	})

	t.Run("negative - no authenticated session", func(t *testing.T) {
		router := setupAuthRouter(&fakeAuthService{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Refresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshFn: func(_ context.Context, token string) (auth.RefreshResponse, error) {
				assert.Equal(t, "old-refresh", token)
				return auth.RefreshResponse{AccessToken: "new-access", TokenType: "Bearer", ExpiresIn: 900}, nil
			},
		}
		router := setupAuthRouter(svc, nil)

		body, _ := json.Marshal(auth.RefreshRequest{RefreshToken: "old-refresh"})
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new-access")
	})

	t.Run("negative - rotated-away token", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshFn: func(_ context.Context, _ string) (auth.RefreshResponse, error) {
				return auth.RefreshResponse{}, autherrors.ErrInvalidRefreshToken
			},
		}
		router := setupAuthRouter(svc, nil)

		body, _ := json.Marshal(auth.RefreshRequest{RefreshToken: "stale"})
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
