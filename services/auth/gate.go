package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// TokenPrefix is the fixed literal every admin credential begins with.
// Authorization is a plain prefix match on a client-visible string; it
// is a capability stub for the demo dashboard, not a security boundary.
const TokenPrefix = "admin-token-"

// ErrInvalidCredentials is returned when the login pair does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Gate issues and checks admin credentials against a single configured
// email/password pair.
type Gate struct {
	Email    string
	Password string
}

// NewGate returns a Gate bound to the configured admin pair.
func NewGate(email, password string) *Gate {
	return &Gate{Email: email, Password: password}
}

// Login compares the submitted pair against the configured constants
// and, on match, mints a credential embedding the current timestamp.
// Tokens never expire and cannot be revoked.
func (g *Gate) Login(email, password string) (string, error) {
	if email != g.Email || password != g.Password {
		return "", ErrInvalidCredentials
	}
	return TokenPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10), nil
}

// Authorize reports whether the credential carries the admin prefix.
// Any string matching the prefix is accepted, including ones that were
// never issued by Login.
func Authorize(credential string) bool {
	return credential != "" && strings.HasPrefix(credential, TokenPrefix)
}
