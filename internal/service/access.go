package service

import "myplanetplan-api/internal/domain"

// CanModify is the ownership rule for items and their tasks: public items
// belong to admins, private items to their owner only.
func CanModify(owner *string, a domain.Actor) bool {
	if owner == nil {
		return a.IsAdmin()
	}
	return a.ID != "" && *owner == a.ID
}
