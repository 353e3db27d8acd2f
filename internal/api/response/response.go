// Package response defines the uniform JSON envelope every reply uses:
// {success, message, data} on success and {success, message, errors?} on
// failure. No handler writes a body outside these two shapes.
package response

import "github.com/labstack/echo/v4"

// Envelope is the wire shape of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Success writes a success envelope with the given status code.
func Success(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. errs may be nil; when present it is a list
// of field-level problems.
func Error(c echo.Context, status int, message string, errs any) error {
	return c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
