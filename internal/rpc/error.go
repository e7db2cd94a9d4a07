package rpc

import (
	"errors"
	"fmt"
	"net/http"

	"resto-be/internal/validation"
)

type Code string

const (
	CodeParseError         Code = "PARSE_ERROR"
	CodeBadRequest         Code = "BAD_REQUEST"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeMethodNotSupported Code = "METHOD_NOT_SUPPORTED"
	CodeUnprocessable      Code = "UNPROCESSABLE_CONTENT"
	CodeInternal           Code = "INTERNAL_SERVER_ERROR"
)

func (c Code) HTTPStatus() int {
	switch c {
	case CodeParseError, CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotSupported:
		return http.StatusMethodNotAllowed
	case CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error is a client-visible procedure failure.
type Error struct {
	Code    Code
	Message string
	Issues  []validation.Issue
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches code and message to cause. The cause is never sent to clients.
func Wrap(code Code, cause error, message string) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// toError classifies any handler error. Unknown errors become internal.
func toError(err error) *Error {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return &Error{Code: CodeBadRequest, Message: "invalid input", Issues: verr.Issues, Cause: err}
	}

	return &Error{Code: CodeInternal, Message: "internal server error", Cause: err}
}

type errorShape struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    Code      `json:"code"`
	Message string    `json:"message"`
	Data    errorData `json:"data"`
}

type errorData struct {
	Code       Code               `json:"code"`
	HTTPStatus int                `json:"httpStatus"`
	Path       string             `json:"path,omitempty"`
	Issues     []validation.Issue `json:"issues,omitempty"`
}

func (e *Error) shape(path string) errorShape {
	return errorShape{Error: errorBody{
		Code:    e.Code,
		Message: e.Message,
		Data: errorData{
			Code:       e.Code,
			HTTPStatus: e.Code.HTTPStatus(),
			Path:       path,
			Issues:     e.Issues,
		},
	}}
}
