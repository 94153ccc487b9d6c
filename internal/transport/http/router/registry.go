package router

import (
	"sort"

	"myplanetplan-api/internal/transport/http/ez"
)

// A module implements one or both interfaces.
type APIModule interface{ MountAPI(ez.EZ) }
type AdminModule interface{ MountAdmin(ez.EZ) }

// Lower mounts first; modules without Priority count as 100.
type prioritizer interface{ Priority() int }

type Registry struct {
	api   []APIModule
	admin []AdminModule
}

// NewRegistry sorts mods into the API and admin lists by the interfaces
// they implement.
func NewRegistry(mods ...any) *Registry {
	r := &Registry{}
	for _, m := range mods {
		if a, ok := m.(APIModule); ok {
			r.api = append(r.api, a)
		}
		if a, ok := m.(AdminModule); ok {
			r.admin = append(r.admin, a)
		}
	}
	sort.SliceStable(r.api, func(i, j int) bool { return priorityOf(r.api[i]) < priorityOf(r.api[j]) })
	sort.SliceStable(r.admin, func(i, j int) bool { return priorityOf(r.admin[i]) < priorityOf(r.admin[j]) })
	return r
}

func (r *Registry) MountAPI(e ez.EZ) {
	for _, m := range r.api {
		m.MountAPI(e)
	}
}

func (r *Registry) MountAdmin(e ez.EZ) {
	for _, m := range r.admin {
		m.MountAdmin(e)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
