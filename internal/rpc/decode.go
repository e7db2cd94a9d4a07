package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"resto-be/internal/validation"
)

// Void is the input type of procedures that take no input. Any sent input is ignored.
type Void struct{}

func decode[I any](raw []byte) (I, error) {
	var in I
	if _, ok := any(in).(Void); ok {
		return in, nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return in, &Error{
			Code:    CodeBadRequest,
			Message: "input is required",
			Issues:  []validation.Issue{{Field: "input", Message: "is required"}},
		}
	}

	if err := json.Unmarshal(raw, &in); err != nil {
		return in, decodeError(err)
	}
	return in, nil
}

// decodeError separates malformed JSON from well-formed JSON of the wrong shape.
func decodeError(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "input"
		}
		return &Error{
			Code:    CodeBadRequest,
			Message: "invalid input",
			Issues: []validation.Issue{{
				Field:   field,
				Message: "expected " + jsonKind(typeErr.Type) + ", got " + typeErr.Value,
			}},
			Cause: err,
		}
	}

	return Wrap(CodeParseError, err, "input is not valid JSON")
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return strings.ToLower(t.Kind().String())
	}
}
