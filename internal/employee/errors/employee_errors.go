package employeeerrors

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
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists.",
		http.StatusConflict,
	)
	ErrInvalidEmployeeUUID = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"uuid": {"Employee UUID must be a valid UUID."},
	})
	ErrInvalidBirthday = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"birthday": {"Birthday must use the YYYY-MM-DD format."},
	})
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"date_employed": {"Dates must use the YYYY-MM-DD format."},
	})
	ErrUnknownLocationCode = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"province_code": {"Unknown geographic code."},
	})
	ErrUnknownOffice = apperror.New(
		apperror.CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	).WithFields(map[string][]string{
		"office_id": {"Unknown office."},
	})
)
