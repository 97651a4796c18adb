package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nateu/dotty/internal/security"
)

// ErrUnknownUser is returned by Get for identifiers that are not registered.
// Callers are expected to guard with IsRegisteredUser; hitting this error is
// a programming mistake, not a runtime condition.
var ErrUnknownUser = errors.New("user: not registered")

// ProfileStore is the persistence boundary: bulk load at startup, full
// overwrite after every mutation.
type ProfileStore interface {
	RetrieveProfiles() ([]*User, error)
	StoreProfiles(users []*User) error
}

// Registry owns the in-memory user set. No internal locking; callers
// serialize access together with message processing.
type Registry struct {
	store ProfileStore
	users []*User
	log   zerolog.Logger
}

// NewRegistry bulk-loads all known users from the profile store.
func NewRegistry(store ProfileStore, log zerolog.Logger) (*Registry, error) {
	users, err := store.RetrieveProfiles()
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return &Registry{store: store, users: users, log: log}, nil
}

// RegisterUser sets the role for an identifier, updating in place when the
// user is already known. The full user set is persisted before returning.
func (r *Registry) RegisterUser(identifier string, role security.Level) error {
	r.log.Debug().Str("identifier", identifier).Stringer("role", role).Msg("register user")
	if u, ok := r.lookup(identifier); ok {
		u.SetSecurityLevel(role)
	} else {
		r.users = append(r.users, New(identifier, role))
	}
	if err := r.store.StoreProfiles(r.users); err != nil {
		return fmt.Errorf("persist profiles: %w", err)
	}
	return nil
}

func (r *Registry) IsRegisteredUser(identifier string) bool {
	_, ok := r.lookup(identifier)
	return ok
}

// GetUser returns the registered user or ErrUnknownUser.
func (r *Registry) GetUser(identifier string) (*User, error) {
	if u, ok := r.lookup(identifier); ok {
		return u, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownUser, identifier)
}

// GetUserListing renders every known user as "<short name>: <ROLE>", one per
// line, in registration order.
func (r *Registry) GetUserListing() string {
	lines := make([]string, 0, len(r.users))
	for _, u := range r.users {
		lines = append(lines, fmt.Sprintf("%s: %s", u.ShortName(), u.ClearanceLevel()))
	}
	return strings.Join(lines, "\n")
}

func (r *Registry) lookup(identifier string) (*User, bool) {
	for _, u := range r.users {
		if u.Identifier() == identifier {
			return u, true
		}
	}
	return nil, false
}
