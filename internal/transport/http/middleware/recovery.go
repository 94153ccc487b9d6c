package middleware

import (
	"github.com/gin-gonic/gin"

	resp "myplanetplan-api/internal/transport/http/response"
)

// Recovered writes the envelope for a recovered panic. The panic itself is
// logged by the zap recovery handler that calls it.
func Recovered(c *gin.Context, _ any) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	resp.Abort(c, resp.CodeServerError, "")
}
