package ports

import (
	"context"

	"github.com/dishdash/dish-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenIssuer signs a stateless bearer token for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// TokenVerifier checks a bearer token and extracts the user id it binds.
// Verification is a pure function of (token, secret); no stored state.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
