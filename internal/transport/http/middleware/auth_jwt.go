package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"myplanetplan-api/internal/core/auth"
	"myplanetplan-api/internal/domain"
	resp "myplanetplan-api/internal/transport/http/response"
)

const keyActor = "actor"

// Auth requires a valid bearer token. With roles set the caller needs at
// least one of them.
func Auth(v *auth.Verifier, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearer(c)
		if !ok {
			resp.Abort(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := v.Parse(tok)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		a := claims.Actor()
		if len(roles) > 0 && !hasAnyRole(a, roles) {
			resp.Abort(c, resp.CodeForbidden, "")
			return
		}
		c.Set(keyActor, a)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through. A token that is sent must
// still verify.
func OptionalAuth(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearer(c)
		if !ok {
			c.Next()
			return
		}
		claims, err := v.Parse(tok)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		c.Set(keyActor, claims.Actor())
		c.Next()
	}
}

// ActorFrom returns the caller set by Auth or OptionalAuth; the zero Actor
// means anonymous.
func ActorFrom(c *gin.Context) domain.Actor {
	if v, ok := c.Get(keyActor); ok {
		if a, ok := v.(domain.Actor); ok {
			return a
		}
	}
	return domain.Actor{}
}

func bearer(c *gin.Context) (string, bool) {
	ah := c.GetHeader("Authorization")
	if len(ah) < 7 || !strings.EqualFold(ah[:7], "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(ah[7:])
	return tok, tok != ""
}

func hasAnyRole(a domain.Actor, roles []string) bool {
	for _, r := range roles {
		if a.HasRole(r) {
			return true
		}
	}
	return false
}
