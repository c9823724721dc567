package autherrors

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// deactivated accounts alike so the response does not leak which one it
	// was.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthenticated,
		"Invalid credentials.",
		http.StatusUnauthorized,
	)
	ErrSuperAdminRequired = apperror.New(
		apperror.CodeForbidden,
		"Access denied. Super administrator role required.",
		http.StatusForbidden,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthenticated,
		"Unauthenticated.",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthenticated,
		"Session expired.",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthenticated,
		"Invalid refresh token.",
		http.StatusUnauthorized,
	)
)
