package service

import (
	"testing"

	"myplanetplan-api/internal/domain"
)

func TestCanModify(t *testing.T) {
	owner := "3f2b8c1e-9d4a-4b6e-8f1a-2c3d4e5f6a7b"
	other := "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"

	tests := []struct {
		name  string
		owner *string
		actor domain.Actor
		want  bool
	}{
		{"public, admin", nil, domain.Actor{ID: other, Roles: []string{"admin"}}, true},
		{"public, plain user", nil, domain.Actor{ID: other, Roles: []string{"user"}}, false},
		{"public, no roles", nil, domain.Actor{ID: other}, false},
		{"private, owner", &owner, domain.Actor{ID: owner, Roles: []string{"user"}}, true},
		{"private, owner without roles", &owner, domain.Actor{ID: owner}, true},
		{"private, other user", &owner, domain.Actor{ID: other, Roles: []string{"user"}}, false},
		{"private, admin not owner", &owner, domain.Actor{ID: other, Roles: []string{"admin"}}, false},
		{"private, anonymous", &owner, domain.Actor{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(tt.owner, tt.actor); got != tt.want {
				t.Errorf("CanModify() = %v, want %v", got, tt.want)
			}
		})
	}
}
