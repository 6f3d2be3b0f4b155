package port

import "context"

type AuthService interface {
	Login(ctx context.Context, userEmail string) (string, error)
}

// TokenIssuer is the opaque token capability consumed by the auth service.
// The only claim is the user's email.
type TokenIssuer interface {
	Issue(email string) (string, error)
	Verify(token string) (string, error)
}
