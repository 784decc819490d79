package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bootcamper/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "app error",
			err:      errors.WithStack(domainerrors.ErrBootcampNotFound.WithMessagef("Bootcamp is not exist with id of %s", "x")),
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"error":"Bootcamp is not exist with id of x"}`,
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"success":false,"error":"Request Entity Too Large"}`,
		},
		{
			name:     "unknown error hides cause",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"error":"Server Error"}`,
		},
		{
			name:     "database error",
			err:      domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "delete bootcamp"),
			wantCode: http.StatusInternalServerError,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/bootcamps/x", nil)
			rec := httptest.NewRecorder()

			m.HandleHTTPError(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			assert.NotContains(t, rec.Body.String(), "deadlock")
		})
	}
}

func TestErrorMiddleware_HeadRequestHasNoBody(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/api/bootcamps/x", nil)
	rec := httptest.NewRecorder()

	m.HandleHTTPError(domainerrors.ErrBootcampNotFound, e.NewContext(req, rec))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
