package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found.",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource.",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternal,
		"An unexpected error occurred.",
		http.StatusInternalServerError,
	)

	ErrUnauthenticated = New(
		CodeUnauthenticated,
		"Unauthenticated.",
		http.StatusUnauthorized,
	)

	ErrValidation = New(
		CodeValidation,
		"The given data was invalid.",
		http.StatusUnprocessableEntity,
	)

	ErrRateLimited = New(
		CodeRateLimited,
		"Too many requests.",
		http.StatusTooManyRequests,
	)
)

// RequiredField builds a 422 error for a missing required field.
func RequiredField(field, jsonName string) *AppError {
	return ErrValidation.WithFields(map[string][]string{
		jsonName: {fmt.Sprintf("%s is required.", field)},
	})
}

// InvalidField builds a 422 error for a field that failed validation.
func InvalidField(field, jsonName string) *AppError {
	return ErrValidation.WithFields(map[string][]string{
		jsonName: {fmt.Sprintf("%s is invalid.", field)},
	})
}
