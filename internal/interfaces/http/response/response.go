package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "healthplans.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps an error to its HTTP status and the {"error": ...} body.
// Anything that is not an AppError becomes a 500 with a generic
// message so storage internals never reach the caller.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	body := gin.H{"error": appErr.Message}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}

	c.JSON(appErr.Status, body)
}
