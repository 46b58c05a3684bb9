package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/core/ports"
)

const defaultTokenTTL = 60 * time.Minute

// TokenService issues and verifies HS256-signed bearer tokens. Verification
// is self-contained: secret + token + clock, no round trip anywhere.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue encodes subject, role, and an expiry of now + ttl into a signed token.
func (s *TokenService) Issue(subject string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"exp":  s.now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes the token, checks signature and expiry, and rejects tokens
// carrying a role outside the closed set. All failure modes collapse into
// domain.ErrInvalidToken so callers never branch on parser internals.
func (s *TokenService) Verify(token string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	sub, _ := claims["sub"].(string)
	rawRole, _ := claims["role"].(string)
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidToken, rawRole)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing expiry", domain.ErrInvalidToken)
	}

	return &ports.Claims{Subject: sub, Role: role, ExpiresAt: exp.Time}, nil
}
