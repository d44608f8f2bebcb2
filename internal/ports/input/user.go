package input

import (
	"context"

	"eventplanner/internal/domain/entities"
)

type RegisterInput struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Phone    string
	Address  string
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type UpdateUserInput struct {
	Name    *string `validate:"omitempty,min=2"`
	Email   *string `validate:"omitempty,email"`
	Role    *string `validate:"omitempty,oneof=user admin"`
	Phone   *string
	Address *string
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User  *entities.User
	Token string
}

type UserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*entities.Principal, error)
	Me(ctx context.Context, actor *entities.Principal) (*entities.User, error)
	CountUsers(ctx context.Context) (int, error)
	ListUsers(ctx context.Context, actor *entities.Principal, filter entities.UserFilter) (*entities.UserPage, error)
	UpdateUser(ctx context.Context, actor *entities.Principal, id string, in UpdateUserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, actor *entities.Principal, id string) error
}
