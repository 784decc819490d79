// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"bootcamper/internal/domain/query"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success    bool              `json:"success"`
	Count      *int              `json:"count,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Data       any               `json:"data,omitempty"`
	Token      string            `json:"token,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// List renders a page of items with its size and, when given, the neighbouring pages.
func List(c echo.Context, items any, count int, pagination *query.Pagination) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Count:      &count,
		Pagination: pagination,
		Data:       items,
	})
}

// Token renders a freshly issued session token, optionally with the user it belongs to.
func Token(c echo.Context, statusCode int, token string, user any) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Data:    user,
		Token:   token,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
	})
}
