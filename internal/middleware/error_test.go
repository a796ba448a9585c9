package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/middleware"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	app.Get("/fail", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestErrorHandler(t *testing.T) {
	t.Run("validation errors", func(t *testing.T) {
		app := newErrorApp(domain.ValidationErrors{domain.NewOutOfRangeError("top_n", 99, 1, 20)})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body middleware.ValidationErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, string(domain.CodeValidation), body.Code)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "top_n", body.Errors[0].Field)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid input", domain.NewInvalidInputError("bad body"), http.StatusBadRequest, string(domain.CodeInvalidInput)},
		{"cache error", domain.NewCacheError("cache down", errors.New("dial tcp")), http.StatusServiceUnavailable, string(domain.CodeCache)},
		{"internal error", domain.NewInternalError("boom", nil), http.StatusInternalServerError, string(domain.CodeInternal)},
		{"fiber error", fiber.NewError(http.StatusRequestEntityTooLarge, "too large"), http.StatusRequestEntityTooLarge, "HTTP_ERROR"},
		{"unknown error", errors.New("surprise"), http.StatusInternalServerError, string(domain.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newErrorApp(tt.err)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body middleware.ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}

	t.Run("domain error details", func(t *testing.T) {
		app := newErrorApp(domain.NewInvalidInputError("bad body").WithContext("field", "text"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)

		var body middleware.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "text", body.Details["field"])
	})
}
