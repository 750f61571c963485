package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// Credentials holds static basic-auth credentials.
type Credentials struct {
	Username string
	Password string
}

// ParseCredentials parses a "username:password" value.
func ParseCredentials(value string) (Credentials, error) {
	if value == "" {
		return Credentials{}, ErrMissingCredentials
	}

	username, password, ok := strings.Cut(value, ":")
	if !ok {
		return Credentials{}, fmt.Errorf("%w: expected username:password", ErrInvalidCredentials)
	}
	if username == "" {
		return Credentials{}, fmt.Errorf("%w: username is empty", ErrInvalidCredentials)
	}

	return Credentials{Username: username, Password: password}, nil
}

// IsZero reports whether no credentials are set.
func (c Credentials) IsZero() bool {
	return c.Username == "" && c.Password == ""
}

// Apply sets the basic-auth header on req.
func (c Credentials) Apply(req *http.Request) {
	req.SetBasicAuth(c.Username, c.Password)
}

// String never reveals the password.
func (c Credentials) String() string {
	if c.IsZero() {
		return ""
	}
	return c.Username + ":[REDACTED]"
}
