package output

import (
	"context"

	"eventplanner/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter) ([]entities.User, int, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *entities.Session) error
	FindByToken(ctx context.Context, token string) (*entities.Session, error)
	Delete(ctx context.Context, token string) error
}
