package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a gin binding error into a 422 AppError with
// per-field messages in the response contract's shape.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string][]string, len(errs))
		for _, e := range errs {
			jsonName := e.Field()
			human := formatFieldName(jsonName)

			switch e.Tag() {
			case "required":
				fields[jsonName] = append(fields[jsonName], human+" is required.")
			case "email":
				fields[jsonName] = append(fields[jsonName], human+" must be a valid email address.")
			case "min":
				fields[jsonName] = append(fields[jsonName], human+" must be at least "+e.Param()+" characters.")
			case "uuid":
				fields[jsonName] = append(fields[jsonName], human+" must be a valid UUID.")
			case "oneof":
				fields[jsonName] = append(fields[jsonName], human+" must be one of: "+e.Param()+".")
			default:
				fields[jsonName] = append(fields[jsonName], human+" is invalid.")
			}
		}
		return ErrValidation.WithFields(fields)
	}

	return ErrValidation
}
