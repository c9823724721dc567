package auditerrors

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
)

var (
	ErrUnknownAction = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"action": {"Action is not a recognized audit action."},
	})

	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"from": {"Dates must use the YYYY-MM-DD format."},
	})
)
