package locationerrors

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
)

var (
	ErrLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Geographic code not found.",
		http.StatusNotFound,
	)
	ErrUpstreamUnavailable = apperror.New(
		apperror.CodeUpstreamUnavailable,
		"Geographic reference service is unavailable.",
		http.StatusBadGateway,
	)
)
