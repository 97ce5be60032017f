package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogsummarizer/internal/shared/errors"
)

// ErrorBody is the failure envelope. Only the AppError message is rendered;
// causes stay in the logs.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse writes data as the whole body. Payload types carry their own
// success flag so clients read summary fields at the top level.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Success: false,
		Error:   message,
		Type:    string(errors.ErrorTypeInternal),
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	status, body := NewErrorBody(err)
	c.JSON(status, body)
}

// NewErrorBody maps err to its status code and envelope. Non-AppError text is
// never shown to the caller.
func NewErrorBody(err error) (int, ErrorBody) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return http.StatusInternalServerError, ErrorBody{
			Success: false,
			Error:   "Internal server error occurred",
			Type:    string(errors.ErrorTypeInternal),
		}
	}

	return appErr.Code, ErrorBody{
		Success: false,
		Error:   appErr.Message,
		Type:    string(appErr.Type),
		Details: appErr.Details,
	}
}
