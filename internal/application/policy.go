package application

import (
	"eventplanner/internal/domain"
	"eventplanner/internal/domain/entities"
)

// AuthorizationPolicy decides who may change events and administer the
// application. It is consulted before any scheduling validation runs.
type AuthorizationPolicy interface {
	CanCreate(actor *entities.Principal) error
	CanModify(actor *entities.Principal, event *entities.Event) error
	CanAdminister(actor *entities.Principal) error
}

var _ AuthorizationPolicy = RolePolicy{}

// RolePolicy lets admins create events and administer users; an event may be
// modified by its creator or by an admin.
type RolePolicy struct{}

func (RolePolicy) CanCreate(actor *entities.Principal) error {
	if actor == nil || actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func (RolePolicy) CanModify(actor *entities.Principal, event *entities.Event) error {
	if actor == nil || actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsAdmin() || event.IsOwnedBy(actor.UserID) {
		return nil
	}
	return domain.ErrForbidden
}

func (RolePolicy) CanAdminister(actor *entities.Principal) error {
	if actor == nil || actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
