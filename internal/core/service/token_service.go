package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dishdash/dish-service/internal/core/domain"
)

// TokenService issues and verifies HS256 bearer tokens binding a user id.
// Tokens are stateless: verification depends only on the token and the
// secret, so a token cannot be revoked before its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user id as subject plus issued-at and
// expiry claims.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the user id it binds.
// A malformed token, a bad signature, a non-HS256 algorithm or an expired
// token all yield domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (int64, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return 0, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, domain.ErrInvalidToken
	}
	return int64(sub), nil
}
