package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "bootcamper/internal/delivery/context"
	"bootcamper/internal/delivery/http/response"
	domainerrors "bootcamper/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := m.resolve(err)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	attrs := []any{
		slog.Int("status", code),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	}
	if code >= http.StatusInternalServerError {
		logger.Error("Request failed", attrs...)
	} else {
		logger.Warn("Request rejected", attrs...)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = response.Error(c, code, message)
	}
	if err != nil {
		logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) resolve(err error) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	// Unknown failures never leak their cause.
	return http.StatusInternalServerError, domainerrors.ErrInternalError.Message()
}
