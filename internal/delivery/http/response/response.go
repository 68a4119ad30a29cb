// Package response renders the JSON bodies of the HTTP API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope used for every error and for service endpoints.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "BOOK_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success wraps data in the envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Payload writes data as the bare response body. Book and token responses
// use this shape.
func Payload(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
