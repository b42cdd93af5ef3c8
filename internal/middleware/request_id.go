package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/pavilion/backend/internal/logging"
)

// RequestIDHeader carries the correlation id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id and stores a logger carrying it in
// the request context. A well-formed incoming id is reused.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		ctx := logging.WithContext(c.Request.Context(), logger.With(zap.String("request_id", id)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
