package auth

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims is the payload carried by tokens minted by the external
// identity provider. The subject is the admin account identifier (email).
type IdentityClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AccountID returns the stable identifier for the authenticated account,
// preferring the explicit email claim over the registered subject.
func (c *IdentityClaims) AccountID() string {
	if c == nil {
		return ""
	}
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}
