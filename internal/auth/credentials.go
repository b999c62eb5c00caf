package auth

import (
	"errors"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
)

// Authenticate returns the first account whose username matches
// case-insensitively and whose password matches exactly. An account without
// a password accepts an empty one. The result carries no password.
func Authenticate(accounts []users.User, username, password string) (users.User, error) {
	for _, u := range accounts {
		if !strings.EqualFold(u.Username, username) {
			continue
		}
		if u.Password == password || (u.Password == "" && password == "") {
			return u.Sanitized(), nil
		}
	}
	return users.User{}, ErrInvalidCredentials
}
