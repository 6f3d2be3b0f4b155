package service

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo}
}

// CreateUser registers a new user. One user per email; the check lives
// here, not in the entity or the store.
func (us *UserService) CreateUser(ctx context.Context, email string) (domain.User, error) {
	_, err := us.repo.FindByEmail(ctx, email)

	if err == nil {
		return domain.User{}, domain.NewError(domain.KindConflict, "Email is already in use")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		return domain.User{}, err
	}

	user, err := domain.NewUser(email)

	if err != nil {
		return domain.User{}, err
	}

	if err := us.repo.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (us *UserService) FindUser(ctx context.Context, email string) (domain.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)

	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.User{}, domain.NewError(domain.KindNotFound, "Email does not exist")
		}

		return domain.User{}, err
	}

	return user, nil
}
