package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/worldroam/countries-api/internal/core/domain"
)

// TokenService issues and verifies signed bearer tokens. Tokens are
// stateless: nothing is persisted server-side and there is no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

type tokenClaims struct {
	jwt.RegisteredClaims
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed HS256 token whose subject is userID, expiring
// after the configured TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates tokenString and returns the embedded user id.
// It fails closed: any signature mismatch, malformed token, or expiry in the
// past yields domain.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &tokenClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
