package fserr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidState     = "INVALID_STATE"
	CodeUnsupportedSport = "UNSUPPORTED_SPORT"
	CodeInternalError    = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInvalidState is returned when an operation is not valid in the
	// session's current lifecycle state.
	ErrInvalidState = New(fiber.StatusConflict, CodeInvalidState, "operation not allowed in current session state")

	// ErrUnsupportedSport is returned for sports without a profile.
	ErrUnsupportedSport = New(fiber.StatusBadRequest, CodeUnsupportedSport, "the requested sport is not supported")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type FormSightError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *FormSightError {
	return &FormSightError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e FormSightError) Msg(format string, parts ...interface{}) *FormSightError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e FormSightError) WithExtras(extras Extras) *FormSightError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *FormSightError {
	// copy ErrInvalidRequest as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *FormSightError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
