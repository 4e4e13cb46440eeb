package middleware

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const requestIDKey = "requestID"

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// RequestIDMiddleware tags every request with a ULID, echoed in the
// X-Request-ID response header for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			entropyMu.Lock()
			id = ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
			entropyMu.Unlock()
		}

		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// GetRequestID returns the request's correlation ID, if one was assigned.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
