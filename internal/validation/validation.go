// Package validation checks procedure inputs against their field constraints
// before anything reaches a repository.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"resto-be/internal/money"

	"github.com/go-playground/validator/v10"
)

// Issue describes one rejected field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned for any input that fails validation.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Field == "" {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, is.Field+": "+is.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// New builds an Error for a single field.
func New(field, message string) *Error {
	return &Error{Issues: []Issue{{Field: field, Message: message}}}
}

// Validator is implemented by inputs that carry their own rules.
type Validator interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		return money.Positive(fl.Field().Float())
	})

	return v
}

// Struct validates the struct tags of v.
func Struct(v any) error {
	return translate(validate.Struct(v))
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, v any, tag string) error {
	err := translate(validate.Var(v, tag))
	var verr *Error
	if errors.As(err, &verr) {
		for i := range verr.Issues {
			verr.Issues[i].Field = field
		}
	}
	return err
}

// OneOf renders values as a oneof rule for Var.
func OneOf[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "oneof=" + strings.Join(parts, " ")
}

// Check runs v's own Validate method when it has one, otherwise its struct tags.
// Non-struct values without a Validate method pass.
func Check(v any) error {
	if cv, ok := v.(Validator); ok {
		return cv.Validate()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return Struct(rv.Interface())
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	out := &Error{Issues: make([]Issue, 0, len(errs))}
	for _, fe := range errs {
		out.Issues = append(out.Issues, Issue{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name: "CreateOrderInput.items[0].quantity"
// becomes "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "money":
		return fmt.Sprintf("must be a positive amount no greater than %s", money.Max.StringFixed(money.Scale))
	default:
		return "failed " + fe.Tag() + " check"
	}
}
