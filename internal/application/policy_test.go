package application

import (
	"errors"
	"testing"

	"eventplanner/internal/domain"
	"eventplanner/internal/domain/entities"
)

func TestRolePolicy(t *testing.T) {
	policy := RolePolicy{}
	owned := &entities.Event{ID: "e1", OwnerID: member.UserID}
	foreign := &entities.Event{ID: "e2", OwnerID: "someone-else"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "create anonymous", err: policy.CanCreate(nil), want: domain.ErrUnauthorized},
		{name: "create empty principal", err: policy.CanCreate(&entities.Principal{}), want: domain.ErrUnauthorized},
		{name: "create user", err: policy.CanCreate(member), want: domain.ErrForbidden},
		{name: "create admin", err: policy.CanCreate(admin), want: nil},
		{name: "modify own", err: policy.CanModify(member, owned), want: nil},
		{name: "modify foreign", err: policy.CanModify(member, foreign), want: domain.ErrForbidden},
		{name: "modify foreign as admin", err: policy.CanModify(admin, foreign), want: nil},
		{name: "modify anonymous", err: policy.CanModify(nil, owned), want: domain.ErrUnauthorized},
		{name: "administer user", err: policy.CanAdminister(member), want: domain.ErrForbidden},
		{name: "administer admin", err: policy.CanAdminister(admin), want: nil},
	}

	for _, tt := range tests {
		if tt.want == nil {
			if tt.err != nil {
				t.Fatalf("%s: expected nil, got %v", tt.name, tt.err)
			}
			continue
		}
		if !errors.Is(tt.err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, tt.err)
		}
	}
}
