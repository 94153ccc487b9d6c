package domain

import "slices"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Actor is the verified caller of a request.
type Actor struct {
	ID    string
	Roles []string
}

func (a Actor) HasRole(role string) bool { return slices.Contains(a.Roles, role) }

func (a Actor) IsAdmin() bool { return a.HasRole(RoleAdmin) }

// Anonymous reports whether no token was presented.
func (a Actor) Anonymous() bool { return a.ID == "" }
