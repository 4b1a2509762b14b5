package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"valley-breezes/models"
	"valley-breezes/services"

	"github.com/go-playground/validator/v10"
)

// ValidationDetails flattens binding and service validation errors into the
// response detail shape. Other errors yield nil.
func ValidationDetails(err error) []models.ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]models.ErrorDetail, 0, len(verrs))
		for _, fe := range verrs {
			field := jsonName(fe.Field())
			out = append(out, models.ErrorDetail{
				Field:      field,
				Constraint: fe.Tag(),
				Message:    fieldMessage(field, fe),
			})
		}
		return out
	}

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return []models.ErrorDetail{{Field: ve.Field, Constraint: ve.Constraint, Message: ve.Message}}
	}
	return nil
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt", "min":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}

// jsonName lowers the first rune of a Go field name: SessionID -> sessionID.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	name := string(r)
	if strings.HasSuffix(name, "ID") {
		name = strings.TrimSuffix(name, "ID") + "Id"
	}
	return name
}
