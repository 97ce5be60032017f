package middleware

import (
	"github.com/gin-gonic/gin"

	"blogsummarizer/internal/shared/constants"
	"blogsummarizer/internal/shared/id"
)

const maxRequestIDLength = 64

// RequestID reuses a caller-supplied X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			// An empty ID on generator failure just leaves the request untagged.
			requestID, _ = id.GenerateWithPrefix("req", id.DefaultLength)
		}

		if requestID != "" {
			c.Set(constants.ContextKeyRequestID, requestID)
			c.Header(constants.HeaderXRequestID, requestID)
		}
		c.Next()
	}
}
