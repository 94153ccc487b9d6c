package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"myplanetplan-api/internal/core/auth"
	"myplanetplan-api/internal/core/config"
	"myplanetplan-api/internal/core/server"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/ez"
	"myplanetplan-api/internal/transport/http/handler"
	mdw "myplanetplan-api/internal/transport/http/middleware"
)

// Modules wires one handler per service.
func Modules(s *service.Services) *Registry {
	return NewRegistry(
		handler.NewUserHandler(s.Users),
		handler.NewDomainHandler(s.Domains),
		handler.NewItemHandler(s.Items),
		handler.NewUserItemHandler(s.UserItems),
		handler.NewTaskHandler(s.Tasks),
	)
}

func baseEngine(l *zap.Logger, lim config.Limits) *gin.Engine {
	r := server.NewRouter(l, lim.CORSOrigins)
	r.Use(mdw.RequestID())
	// zero disables a limit
	if lim.RateRPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(lim.RateRPS), lim.RateBurst))
	}
	if lim.PerIPRPS > 0 {
		r.Use(mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), lim.PerIPBurst, 10*time.Minute))
	}
	if lim.MaxConcurrent > 0 {
		r.Use(mdw.ConcurrencyLimit(lim.MaxConcurrent))
	}
	if lim.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(lim.MaxBodyBytes))
	}
	if lim.TimeoutSec > 0 {
		r.Use(mdw.Timeout(time.Duration(lim.TimeoutSec) * time.Second))
	}
	r.Use(mdw.Metrics(), mdw.AccessLog(l))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// NewAPIEngine serves /api/v1. Tokens are optional at the group level;
// actions that need a caller say so.
func NewAPIEngine(l *zap.Logger, lim config.Limits, v *auth.Verifier, reg *Registry) *gin.Engine {
	r := baseEngine(l, lim)
	api := r.Group("/api/v1")
	api.Use(mdw.OptionalAuth(v))
	reg.MountAPI(ez.New(api, l))
	return r
}
