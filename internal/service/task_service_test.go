package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"myplanetplan-api/internal/domain"
)

func TestTaskCycle(t *testing.T) {
	f := newFixture(t, true)
	admin := f.registered(t, "admin")
	user := f.registered(t, "user")
	it := f.publicItem(t, 200, "Daily")

	stretch, err := f.svc.Tasks.Create(f.ctx, admin, TaskInput{ItemID: it.ID, Name: "Stretch"})
	require.NoError(t, err)
	_, err = f.svc.Tasks.Create(f.ctx, admin, TaskInput{ItemID: it.ID, Name: "Walk"})
	require.NoError(t, err)

	ui, err := f.svc.UserItems.Add(f.ctx, user, it.ID)
	require.NoError(t, err)

	done := func() map[string]bool {
		ts, err := f.svc.Tasks.List(f.ctx, user, it.ID, ui.ID)
		require.NoError(t, err)
		require.Len(t, ts, 2)
		out := map[string]bool{}
		for _, tv := range ts {
			out[tv.Name] = tv.Completed
		}
		return out
	}
	require.Equal(t, map[string]bool{"Stretch": false, "Walk": false}, done())

	_, err = f.svc.Tasks.Complete(f.ctx, user, it.ID, stretch.ID, ui.ID)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Stretch": true, "Walk": false}, done())

	// completing the item starts a new cycle
	f.clock.Advance(time.Minute)
	_, err = f.svc.UserItems.Complete(f.ctx, user, it.ID)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Stretch": false, "Walk": false}, done())

	f.clock.Advance(time.Minute)
	_, err = f.svc.Tasks.Complete(f.ctx, user, it.ID, stretch.ID, ui.ID)
	require.NoError(t, err)
	require.True(t, done()["Stretch"])
}

func TestDoneInCycle(t *testing.T) {
	start := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cs := []domain.TaskCompletion{
		{TaskID: "a", CompletedAt: start.Add(-time.Hour)},
		{TaskID: "b", CompletedAt: start},
		{TaskID: "c", CompletedAt: start.Add(time.Second)},
	}
	require.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, DoneInCycle(cs, nil))
	require.Equal(t, map[string]bool{"c": true}, DoneInCycle(cs, &start))
}

func TestTaskListContext(t *testing.T) {
	f := newFixture(t, true)
	owner := f.registered(t, "user")
	other := f.registered(t, "user")
	pub := f.publicItem(t, 200, "None")

	priv, err := f.svc.Items.Create(f.ctx, owner, f.input(t, "Mine", "Easy", "Easy", "Easy", "None"))
	require.NoError(t, err)
	_, err = f.svc.Tasks.Create(f.ctx, owner, TaskInput{ItemID: priv.ID, Name: "Step one"})
	require.NoError(t, err)

	anon := domain.Actor{}
	for _, ctxID := range []string{"", "undefined", "null"} {
		ts, err := f.svc.Tasks.List(f.ctx, anon, pub.ID, ctxID)
		require.NoError(t, err)
		require.Empty(t, ts)
	}

	ts, err := f.svc.Tasks.List(f.ctx, owner, priv.ID, "")
	require.NoError(t, err)
	require.Len(t, ts, 1)
	require.False(t, ts[0].Completed)

	_, err = f.svc.Tasks.List(f.ctx, other, priv.ID, "")
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.svc.Tasks.List(f.ctx, anon, priv.ID, "")
	require.ErrorIs(t, err, domain.ErrForbidden)

	ownerUI, err := f.svc.UserItems.Add(f.ctx, owner, pub.ID)
	require.NoError(t, err)
	_, err = f.svc.Tasks.List(f.ctx, other, pub.ID, ownerUI.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.Tasks.List(f.ctx, owner, pub.ID, "not-an-id")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.svc.Items.Delete(f.ctx, owner, priv.ID))
	_, err = f.svc.Tasks.List(f.ctx, owner, priv.ID, "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompleteTaskChecks(t *testing.T) {
	f := newFixture(t, true)
	admin := f.registered(t, "admin")
	user := f.registered(t, "user")
	other := f.registered(t, "user")
	it := f.publicItem(t, 200, "None")
	second := f.publicItem(t, 300, "None")

	task, err := f.svc.Tasks.Create(f.ctx, admin, TaskInput{ItemID: it.ID, Name: "Only task"})
	require.NoError(t, err)
	foreign, err := f.svc.Tasks.Create(f.ctx, admin, TaskInput{ItemID: second.ID, Name: "Other task"})
	require.NoError(t, err)

	ui, err := f.svc.UserItems.Add(f.ctx, user, it.ID)
	require.NoError(t, err)

	noRole := domain.Actor{ID: user.ID}
	_, err = f.svc.Tasks.Complete(f.ctx, noRole, it.ID, task.ID, ui.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.Tasks.Complete(f.ctx, other, it.ID, task.ID, ui.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Tasks.Complete(f.ctx, user, it.ID, foreign.ID, ui.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	tc, err := f.svc.Tasks.Complete(f.ctx, user, it.ID, task.ID, ui.ID)
	require.NoError(t, err)
	require.Equal(t, ui.ID, tc.UserItemID)
	require.True(t, tc.CompletedAt.Equal(f.clock.Now()))
}

func TestTaskEditing(t *testing.T) {
	f := newFixture(t, true)
	admin := f.registered(t, "admin")
	user := f.registered(t, "user")
	it := f.publicItem(t, 200, "None")
	second := f.publicItem(t, 300, "None")

	_, err := f.svc.Tasks.Create(f.ctx, user, TaskInput{ItemID: it.ID, Name: "Sneaky"})
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.svc.Tasks.Create(f.ctx, admin, TaskInput{ItemID: it.ID, Name: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	task, err := f.svc.Tasks.Create(f.ctx, admin, TaskInput{ItemID: it.ID, Name: "Plant <b>seeds</b>"})
	require.NoError(t, err)
	require.Equal(t, "Plant bseeds/b", task.Name)

	upd, err := f.svc.Tasks.Update(f.ctx, admin, it.ID, task.ID, TaskInput{Name: "Plant seeds", Description: "in spring"})
	require.NoError(t, err)
	require.Equal(t, "in spring", upd.Description)

	_, err = f.svc.Tasks.Update(f.ctx, user, it.ID, task.ID, TaskInput{Name: "Mine now"})
	require.ErrorIs(t, err, domain.ErrForbidden)

	// deletes are scoped to the item
	err = f.svc.Tasks.Delete(f.ctx, admin, second.ID, task.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, f.svc.Tasks.Delete(f.ctx, admin, it.ID, task.ID))
	err = f.svc.Tasks.Delete(f.ctx, admin, it.ID, task.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	ts, err := f.svc.Tasks.List(f.ctx, admin, it.ID, "")
	require.NoError(t, err)
	require.Empty(t, ts)
}
