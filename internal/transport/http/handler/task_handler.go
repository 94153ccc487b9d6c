package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/ez"
)

type TaskHandler struct{ svc *service.TaskService }

func NewTaskHandler(svc *service.TaskService) *TaskHandler { return &TaskHandler{svc: svc} }

type taskListURI struct {
	ItemID     string `uri:"item_id"`
	UserItemID string `uri:"user_item_id"`
}

type taskCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Item        string `json:"item"`
}

type taskUpdate struct {
	ItemID      string `uri:"item_id" json:"-"`
	TaskID      string `json:"task_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type taskComplete struct {
	ItemID     string `json:"item_id"`
	TaskID     string `json:"task_id"`
	UserItemID string `json:"user_item_id"`
}

func (h *TaskHandler) MountAPI(e ez.EZ) {
	list := func(c *gin.Context, a domain.Actor, in *taskListURI) ([]domain.TaskView, error) {
		return h.svc.List(c.Request.Context(), a, in.ItemID, in.UserItemID)
	}
	for _, p := range []string{"/item-tasks/:item_id", "/item-tasks/:item_id/:user_item_id"} {
		ez.RegisterAction(e, ez.Action[taskListURI, []domain.TaskView]{
			Method:  http.MethodGet,
			Path:    p,
			Binder:  ez.BindURI,
			Handler: list,
		})
	}
	ez.RegisterAction(e, ez.Action[taskCreate, *domain.Task]{
		Method: http.MethodPost,
		Path:   "/item-task",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *taskCreate) (*domain.Task, error) {
			return h.svc.Create(c.Request.Context(), a, service.TaskInput{
				ItemID: in.Item, Name: in.Name, Description: in.Description,
			})
		},
	})
	ez.RegisterAction(e, ez.Action[taskUpdate, *domain.Task]{
		Method: http.MethodPut,
		Path:   "/item-task/:item_id",
		Binder: ez.BindURIJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *taskUpdate) (*domain.Task, error) {
			return h.svc.Update(c.Request.Context(), a, in.ItemID, in.TaskID, service.TaskInput{
				Name: in.Name, Description: in.Description,
			})
		},
	})
	ez.RegisterAction(e, ez.Action[taskUpdate, deleted]{
		Method: http.MethodDelete,
		Path:   "/item-task/:item_id",
		Binder: ez.BindURIJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *taskUpdate) (deleted, error) {
			return deleted{ID: in.TaskID}, h.svc.Delete(c.Request.Context(), a, in.ItemID, in.TaskID)
		},
	})
	ez.RegisterAction(e, ez.Action[taskComplete, *domain.TaskCompletion]{
		Method: http.MethodPost,
		Path:   "/item-task-complete",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, a domain.Actor, in *taskComplete) (*domain.TaskCompletion, error) {
			return h.svc.Complete(c.Request.Context(), a, in.ItemID, in.TaskID, in.UserItemID)
		},
	})
}
