package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body every failed request receives. The success flag
// and human-readable message are always present; internals never leak.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error"`
}

// HandleError writes the structured error body for a gin request.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error", "code", err.Code, "domain", err.Domain, "error", err.Error())
	}

	c.JSON(err.HTTPCode, ErrorResponse{
		Success: false,
		Message: err.Message,
		Error:   err,
	})
}

// HandleAnyError coerces arbitrary errors into AppError before responding.
func HandleAnyError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		HandleError(c, appErr)
		return
	}
	HandleError(c, InternalError(err))
}
