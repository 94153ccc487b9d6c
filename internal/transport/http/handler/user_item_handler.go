package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/ez"
)

type UserItemHandler struct{ svc *service.UserItemService }

func NewUserItemHandler(svc *service.UserItemService) *UserItemHandler {
	return &UserItemHandler{svc: svc}
}

type itemRef struct {
	ItemID string `json:"item_id"`
}

type userItemRef struct {
	UserItemID string `json:"user_item_id"`
	ItemID     string `json:"item_id"`
}

func (h *UserItemHandler) MountAPI(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, []domain.UserItemView]{
		Method: http.MethodGet,
		Path:   "/user-item",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, _ *struct{}) ([]domain.UserItemView, error) {
			return h.svc.List(c.Request.Context(), a)
		},
	})
	ez.RegisterAction(e, ez.Action[itemRef, *domain.UserItem]{
		Method: http.MethodPost,
		Path:   "/user-item",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *itemRef) (*domain.UserItem, error) {
			return h.svc.Add(c.Request.Context(), a, in.ItemID)
		},
	})
	ez.RegisterAction(e, ez.Action[userItemRef, deleted]{
		Method: http.MethodDelete,
		Path:   "/user-item-delete",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *userItemRef) (deleted, error) {
			return deleted{ID: in.UserItemID}, h.svc.Remove(c.Request.Context(), a, in.UserItemID, in.ItemID)
		},
	})
	ez.RegisterAction(e, ez.Action[itemRef, *domain.UserItemHistory]{
		Method: http.MethodPost,
		Path:   "/user-item-complete",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *itemRef) (*domain.UserItemHistory, error) {
			return h.svc.Complete(c.Request.Context(), a, in.ItemID)
		},
	})
	ez.RegisterAction(e, ez.Action[struct{}, []domain.HistoryView]{
		Method: http.MethodGet,
		Path:   "/user-item-history",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, _ *struct{}) ([]domain.HistoryView, error) {
			return h.svc.History(c.Request.Context(), a)
		},
	})
}
