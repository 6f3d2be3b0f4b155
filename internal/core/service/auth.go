package service

import (
	"context"
	"log/slog"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type AuthService struct {
	users  port.UserService
	tokens port.TokenIssuer
}

func NewAuthService(users port.UserService, tokens port.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login issues a bearer token for a registered email. There is no
// credential check beyond existence; the token carries the email as its
// only claim.
func (as *AuthService) Login(ctx context.Context, userEmail string) (string, error) {
	if userEmail == "" {
		return "", domain.NewError(domain.KindBadRequest, "userEmail is required")
	}

	if _, err := as.users.FindUser(ctx, userEmail); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", domain.NewError(domain.KindNotFound, "User not found")
		}

		slog.Error("Auth#Login", "find_user", err)

		return "", err
	}

	token, err := as.tokens.Issue(userEmail)

	if err != nil {
		slog.Error("Auth#Login", "issue_token", err)
		return "", err
	}

	return token, nil
}
