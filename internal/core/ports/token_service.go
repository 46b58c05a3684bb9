package ports

import (
	"time"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

// Claims are the attributes carried by an access token.
type Claims struct {
	Subject   string
	Role      domain.Role
	ExpiresAt time.Time
}

// TokenIssuer creates signed bearer tokens.
type TokenIssuer interface {
	Issue(subject string, role domain.Role) (string, error)
}

// TokenVerifier checks a bearer token and returns its claims. Any failure
// (bad signature, malformed token, expired, unknown role) is reported as an
// error wrapping domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}
