package models

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad input"), http.StatusBadRequest},
		{"field errors", NewFieldErrors("Text is required"), http.StatusBadRequest},
		{"forbidden maps to 400", NewForbiddenError("User not authorized"), http.StatusBadRequest},
		{"conflict maps to 400", NewConflictError("Post already liked"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("No token, authorization denied"), http.StatusUnauthorized},
		{"not found", NewNotFoundError("Post"), http.StatusNotFound},
		{"internal", NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func respondBody(t *testing.T, err error) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondWithError(c, err)
	})

	resp, aerr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, aerr)
	defer func() { _ = resp.Body.Close() }()

	raw, rerr := io.ReadAll(resp.Body)
	require.NoError(t, rerr)
	return resp.StatusCode, string(raw)
}

func TestRespondWithError_SingleMessage(t *testing.T) {
	t.Parallel()

	status, body := respondBody(t, NewNotFoundError("Post"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"msg":"Post not found"}`, body)
}

func TestRespondWithError_FieldErrors(t *testing.T) {
	t.Parallel()

	status, body := respondBody(t, NewFieldErrors("Name is required", "Please include a valid email"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"errors":[{"msg":"Name is required"},{"msg":"Please include a valid email"}]}`, body)
}

func TestRespondWithError_InternalNeverLeaksDetail(t *testing.T) {
	t.Parallel()

	status, body := respondBody(t, NewInternalError(errors.New("pq: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"msg":"Server error"}`, body)
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	err := NewInternalError(inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "boom")
}
