package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/ez"
)

type DomainHandler struct{ svc *service.DomainService }

func NewDomainHandler(svc *service.DomainService) *DomainHandler { return &DomainHandler{svc: svc} }

type domainURI struct {
	Name string `uri:"name"`
}

type domainBody struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *DomainHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[domainURI, []domain.DomainEntry]{
		Method: http.MethodGet,
		Path:   "/domains/:name",
		Binder: ez.BindURI,
		Handler: func(c *gin.Context, _ domain.Actor, in *domainURI) ([]domain.DomainEntry, error) {
			return h.svc.ByName(c.Request.Context(), in.Name)
		},
	})
}

func (h *DomainHandler) MountAdmin(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[domainBody, *domain.DomainEntry]{
		Method: http.MethodPost,
		Path:   "/domains",
		Binder: ez.BindJSON,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ domain.Actor, in *domainBody) (*domain.DomainEntry, error) {
			return h.svc.Create(c.Request.Context(), in.Name, in.Value)
		},
	})
}
