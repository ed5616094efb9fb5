// Package middleware carries gin middleware shared by the edge gateway.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the correlation header forwarded to every backend.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns a request id when the caller did not send one and
// echoes it on the response, so one id follows the request through the
// gateway into the backends.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(HeaderRequestID, id)
		}
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
