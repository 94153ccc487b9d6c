package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "myplanetplan-api/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests so the DB pool is not swamped.
// Waiting stops when the request context ends.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			resp.Abort(c, resp.CodeTooManyRequests, "server busy")
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
