// Package response provides the unified JSON envelope of the public API.
package response

import (
	"net/http"

	deliverycontext "quaidirect/internal/delivery/context"
	domainerrors "quaidirect/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes a successful response wrapping data in the standard envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error writes an error response in the standard envelope.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest writes a 400 error response.
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized writes a 401 error response.
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden writes a 403 error response.
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound writes a 404 error response.
func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// Conflict writes a 409 error response.
func Conflict(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, nil)
}

// InternalServerError writes a 500 error response.
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
