package port

import (
	"context"

	"taskapp/internal/core/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
}

type UserService interface {
	CreateUser(ctx context.Context, email string) (domain.User, error)
	FindUser(ctx context.Context, email string) (domain.User, error)
}
