package applicationerrors

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found.",
		http.StatusNotFound,
	)
	ErrInvalidApplicationUUID = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"uuid": {"Application UUID must be a valid UUID."},
	})
	ErrInvalidRedirectURI = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"redirect_uris": {"Each redirect URI must be a valid absolute URL."},
	})
	ErrClientIDExhausted = apperror.New(
		apperror.CodeInternal,
		"Could not allocate a unique client ID.",
		http.StatusInternalServerError,
	)
	ErrInvalidClientCredentials = apperror.New(
		apperror.CodeUnauthenticated,
		"Invalid client credentials.",
		http.StatusUnauthorized,
	)
)
