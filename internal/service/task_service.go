package service

import (
	"context"
	"time"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/validate"
)

type TaskService struct {
	store domain.Store
	now   func() time.Time
}

type TaskInput struct {
	ItemID      string
	Name        string
	Description string
}

// List returns the item's tasks. With a user item context each task carries
// whether it was completed in the current cycle.
func (s *TaskService) List(ctx context.Context, a domain.Actor, itemID, userItemID string) ([]domain.TaskView, error) {
	if !validate.UUID(itemID) {
		return nil, invalid("item id")
	}
	it, err := s.store.Items().FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.Active {
		return nil, domain.ErrNotFound
	}
	if it.Owner != nil && *it.Owner != a.ID {
		return nil, domain.ErrForbidden
	}
	tasks, err := s.store.Tasks().ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = domain.TaskView{Task: t}
	}
	if noContext(userItemID) {
		return out, nil
	}
	if !validate.UUID(a.ID, userItemID) {
		return nil, invalid("user item id")
	}
	ui, err := s.ownUserItem(ctx, a, userItemID, itemID)
	if err != nil {
		return nil, err
	}
	done, err := s.doneThisCycle(ctx, ui)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Completed = done[out[i].ID]
	}
	return out, nil
}

func (s *TaskService) ownUserItem(ctx context.Context, a domain.Actor, userItemID, itemID string) (*domain.UserItem, error) {
	ui, err := s.store.UserItems().FindByID(ctx, userItemID)
	if err != nil {
		return nil, err
	}
	if ui.UserID != a.ID || ui.ItemID != itemID {
		return nil, domain.ErrNotFound
	}
	return ui, nil
}

// doneThisCycle collects tasks completed after the user item's last completion.
func (s *TaskService) doneThisCycle(ctx context.Context, ui *domain.UserItem) (map[string]bool, error) {
	cs, err := s.store.Tasks().Completions(ctx, ui.ID)
	if err != nil {
		return nil, err
	}
	return DoneInCycle(cs, ui.CompletedAt), nil
}

// DoneInCycle keeps completions newer than cycleStart; a nil start keeps all.
func DoneInCycle(cs []domain.TaskCompletion, cycleStart *time.Time) map[string]bool {
	done := make(map[string]bool, len(cs))
	for _, c := range cs {
		if cycleStart == nil || c.CompletedAt.After(*cycleStart) {
			done[c.TaskID] = true
		}
	}
	return done
}

func (s *TaskService) Create(ctx context.Context, a domain.Actor, in TaskInput) (*domain.Task, error) {
	if !validate.UUID(a.ID, in.ItemID) {
		return nil, invalid("item id")
	}
	t := &domain.Task{ItemID: in.ItemID, Name: validate.Text(in.Name), Description: validate.Text(in.Description)}
	if t.Name == "" {
		return nil, invalid("name")
	}
	if _, err := editable(ctx, s.store.Items(), a, in.ItemID); err != nil {
		return nil, err
	}
	if err := s.store.Tasks().Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, a domain.Actor, itemID, taskID string, in TaskInput) (*domain.Task, error) {
	if !validate.UUID(a.ID, itemID, taskID) {
		return nil, invalid("ids")
	}
	name := validate.Text(in.Name)
	if name == "" {
		return nil, invalid("name")
	}
	if _, err := editable(ctx, s.store.Items(), a, itemID); err != nil {
		return nil, err
	}
	t, err := s.store.Tasks().Find(ctx, itemID, taskID)
	if err != nil {
		return nil, err
	}
	t.Name, t.Description = name, validate.Text(in.Description)
	if err := s.store.Tasks().Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, a domain.Actor, itemID, taskID string) error {
	if !validate.UUID(a.ID, itemID, taskID) {
		return invalid("ids")
	}
	if _, err := editable(ctx, s.store.Items(), a, itemID); err != nil {
		return err
	}
	return s.store.Transaction(ctx, func(tx domain.Store) error {
		return tx.Tasks().Delete(ctx, itemID, taskID)
	})
}

// Complete records a task as done inside the caller's own user item.
func (s *TaskService) Complete(ctx context.Context, a domain.Actor, itemID, taskID, userItemID string) (*domain.TaskCompletion, error) {
	if !a.HasRole(domain.RoleUser) {
		return nil, domain.ErrForbidden
	}
	if !validate.UUID(a.ID, itemID, taskID, userItemID) {
		return nil, invalid("ids")
	}
	ui, err := s.ownUserItem(ctx, a, userItemID, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Tasks().Find(ctx, itemID, taskID); err != nil {
		return nil, err
	}
	tc := &domain.TaskCompletion{UserItemID: ui.ID, TaskID: taskID, CompletedAt: s.now()}
	if err := s.store.Tasks().AddCompletion(ctx, tc); err != nil {
		return nil, err
	}
	return tc, nil
}
