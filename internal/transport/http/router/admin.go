package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"myplanetplan-api/internal/core/auth"
	"myplanetplan-api/internal/core/config"
	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/transport/http/ez"
	mdw "myplanetplan-api/internal/transport/http/middleware"
)

// NewAdminEngine serves /admin/v1; every route needs the admin role.
func NewAdminEngine(l *zap.Logger, lim config.Limits, v *auth.Verifier, reg *Registry) *gin.Engine {
	r := baseEngine(l, lim)
	admin := r.Group("/admin/v1")
	admin.Use(mdw.Auth(v, domain.RoleAdmin))
	reg.MountAdmin(ez.New(admin, l))
	return r
}
