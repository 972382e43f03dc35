package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages for validators registered outside this package, keyed by tag.
var customMessages = map[string]string{}

// RegisterMessage sets the client message for a custom validation tag.
func RegisterMessage(tag, message string) {
	customMessages[tag] = message
}

// FromBinding converts a gin binding failure into a 400 with a per-field error list.
func FromBinding(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
		}
		return Validation("Validation failed", fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Validation("Validation failed", FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String()),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return BadRequest("Invalid JSON body")
	}
	if errors.Is(err, io.EOF) {
		return BadRequest("Request body is required")
	}
	return Validation("Validation failed", FieldError{Field: "body", Message: err.Error()}).Wrap(err)
}

// fieldPath drops the root struct name from the namespace, e.g. "items[0].hsCodeId".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	if msg, ok := customMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "Please provide a valid email"
	case "uuid", "uuid4":
		return name + " must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "datetime":
		return name + " must be in yyyy-MM-dd format"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
	case "min":
		return boundMessage(fe, "at least")
	case "max":
		return boundMessage(fe, "at most")
	default:
		return name + " is invalid"
	}
}

func boundMessage(fe validator.FieldError, qualifier string) string {
	switch fe.Kind().String() {
	case "string":
		return fmt.Sprintf("%s must be %s %s characters", fe.Field(), qualifier, fe.Param())
	case "slice", "array", "map":
		return fmt.Sprintf("%s must contain %s %s items", fe.Field(), qualifier, fe.Param())
	default:
		return fmt.Sprintf("%s must be %s %s", fe.Field(), qualifier, fe.Param())
	}
}
