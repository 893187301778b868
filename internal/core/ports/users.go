package ports

import (
	"errors"

	"github.com/dockpanel/dockpanel/internal/core/domain"
)

var (
	// ErrUsernameTaken is returned by Create when the username already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound is returned by lookups that match no stored user.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore persists operator accounts keyed by username. Usernames are
// unique; the store enforces that inside Create.
type UserStore interface {
	Create(username, passwordHash string) (domain.User, error)
	GetByUsername(username string) (domain.User, error)
	GetByID(id string) (domain.User, error)
	UpdatePassword(id, passwordHash string) error
}
