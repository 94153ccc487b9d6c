package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/ez"
)

type ItemHandler struct{ svc *service.ItemService }

func NewItemHandler(svc *service.ItemService) *ItemHandler { return &ItemHandler{svc: svc} }

type itemBody struct {
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	CostMoney   string `json:"cost_money"`
	CostEffort  string `json:"cost_effort"`
	CostTime    string `json:"cost_time"`
	Repeatable  string `json:"repeatable"`
}

func (b itemBody) input() service.ItemInput {
	return service.ItemInput{
		Name:        b.Name,
		Summary:     b.Summary,
		Description: b.Description,
		CostMoney:   b.CostMoney,
		CostEffort:  b.CostEffort,
		CostTime:    b.CostTime,
		Repeatable:  b.Repeatable,
	}
}

type itemURI struct {
	ItemID string `uri:"item_id"`
}

type itemUpdate struct {
	ItemID string `uri:"item_id" json:"-"`
	itemBody
}

type deleted struct {
	ID string `json:"id"`
}

func (h *ItemHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, []domain.ItemView]{
		Method: http.MethodGet,
		Path:   "/public-items",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, a domain.Actor, _ *struct{}) ([]domain.ItemView, error) {
			return h.svc.ListPublic(c.Request.Context(), a)
		},
	})
	ez.RegisterAction(e, ez.Action[itemBody, *domain.Item]{
		Method: http.MethodPost,
		Path:   "/public-items",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *itemBody) (*domain.Item, error) {
			return h.svc.Create(c.Request.Context(), a, in.input())
		},
	})
	ez.RegisterAction(e, ez.Action[itemUpdate, *domain.Item]{
		Method: http.MethodPut,
		Path:   "/public-items/:item_id",
		Binder: ez.BindURIJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *itemUpdate) (*domain.Item, error) {
			return h.svc.Update(c.Request.Context(), a, in.ItemID, in.input())
		},
	})
	ez.RegisterAction(e, ez.Action[itemURI, deleted]{
		Method: http.MethodDelete,
		Path:   "/public-items/:item_id",
		Binder: ez.BindURI,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *itemURI) (deleted, error) {
			return deleted{ID: in.ItemID}, h.svc.Delete(c.Request.Context(), a, in.ItemID)
		},
	})
	ez.RegisterAction(e, ez.Action[itemURI, any]{
		Method: http.MethodGet,
		Path:   "/itemdetails/:item_id",
		Binder: ez.BindURI,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *itemURI) (any, error) {
			return h.svc.Details(c.Request.Context(), a, in.ItemID)
		},
	})
}

type itemsQuery struct {
	IncludeInactive bool `form:"include_inactive"`
}

func (h *ItemHandler) MountAdmin(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[itemsQuery, []domain.ItemView]{
		Method: http.MethodGet,
		Path:   "/items",
		Binder: ez.BindQuery,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ domain.Actor, in *itemsQuery) ([]domain.ItemView, error) {
			return h.svc.ListAll(c.Request.Context(), in.IncludeInactive)
		},
	})
}
