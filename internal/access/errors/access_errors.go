package accesserrors

import (
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found.",
		http.StatusNotFound,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found.",
		http.StatusNotFound,
	)
	ErrGrantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee does not have access to this application.",
		http.StatusNotFound,
	)
	ErrGrantAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has access to this application.",
		http.StatusConflict,
	)
	ErrApplicationInactive = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"application_uuid": {"Access cannot be granted on an inactive application."},
	})
	ErrInvalidEmployeeUUID = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"employee_uuid": {"Employee UUID must be a valid UUID."},
	})
	ErrInvalidApplicationUUID = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"application_uuid": {"Application UUID must be a valid UUID."},
	})
)
