package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/ez"
)

type UserHandler struct{ svc *service.UserService }

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Priority() int { return 10 }

func (h *UserHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/useraccount",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, _ *struct{}) (*domain.User, error) {
			return h.svc.Get(c.Request.Context(), a)
		},
	})
	ez.RegisterAction(e, ez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/useraccount",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, _ *struct{}) (*domain.User, error) {
			return h.svc.Register(c.Request.Context(), a)
		},
	})
}

type leaderboardQuery struct {
	Offset int `form:"offset,default=0"`
	Limit  int `form:"limit,default=20"`
}

func (h *UserHandler) MountAdmin(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[leaderboardQuery, service.Page[domain.User]]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ domain.Actor, in *leaderboardQuery) (service.Page[domain.User], error) {
			return h.svc.Leaderboard(c.Request.Context(), in.Offset, in.Limit)
		},
	})
}
