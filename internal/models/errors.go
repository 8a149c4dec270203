package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the API. Every handler converts failures into one
// of these before writing a response; nothing else crosses the HTTP boundary.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is the application error carried between layers.
type AppError struct {
	Code    string
	Message string
	Fields  []string // per-field messages for validation failures
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing resource. Malformed identifiers are
// normalized to this error as well, so a bad id never surfaces as a 500.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewFieldErrors reports one or more per-field validation failures, rendered
// as an {errors:[{msg},...]} body.
func NewFieldErrors(msgs ...string) *AppError {
	message := "Validation failed"
	if len(msgs) > 0 {
		message = msgs[0]
	}
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Fields:  msgs,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewForbiddenError reports an authenticated but not permitted request
// (ownership failures, self-like).
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

// NewConflictError reports a state-rule violation such as a duplicate like.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Server error",
		Err:     err,
	}
}

// HTTPStatus maps an error to its response status. Ownership and conflict
// failures map to 400 rather than 403/409, matching the wire contract the
// frontend was built against.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeForbidden, CodeConflict:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

type fieldError struct {
	Msg string `json:"msg"`
}

// RespondWithError writes the JSON error body for err and the mapped status.
// Internal errors never leak detail to the client.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := HTTPStatus(err)

	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	if len(appErr.Fields) > 0 {
		out := make([]fieldError, 0, len(appErr.Fields))
		for _, m := range appErr.Fields {
			out = append(out, fieldError{Msg: m})
		}
		return c.Status(status).JSON(fiber.Map{"errors": out})
	}

	return c.Status(status).JSON(fiber.Map{"msg": appErr.Message})
}
