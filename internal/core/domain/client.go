package domain

import "errors"

// Role is the closed set of roles a token may carry.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var ErrClientNotFound = errors.New("client not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidEvent = errors.New("invalid event payload")

// ParseRole converts a raw claim value into a Role. Unknown values are
// rejected here so call sites never compare raw strings.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Client is the managed business record.
type Client struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Company  string `json:"company,omitempty" bson:"company,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

// ClientUpdate is a partial update. Nil fields are left untouched by the
// store; only non-nil fields are written. This is what lets a PUT omit a
// field without erasing it.
type ClientUpdate struct {
	Name     *string
	Email    *string
	Company  *string
	Phone    *string
	IsActive *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (u ClientUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Company == nil && u.Phone == nil && u.IsActive == nil
}
