// Package user tracks who the bot knows and what each of them is allowed to
// do. The registry keeps the authoritative in-memory set and writes it back
// through a ProfileStore after every change.
package user

import (
	"strings"

	"github.com/Nateu/dotty/internal/security"
)

// User is an identifier (a chat-network address) with a clearance level.
// The level is mutable; the identifier is not.
type User struct {
	identifier    string
	securityLevel security.Level
}

func New(identifier string, level security.Level) *User {
	return &User{identifier: identifier, securityLevel: level}
}

func (u *User) Identifier() string { return u.identifier }

func (u *User) ClearanceLevel() security.Level { return u.securityLevel }

func (u *User) SetSecurityLevel(level security.Level) { u.securityLevel = level }

// ShortName derives a display name from a kik-style JID: the part before the
// "@" minus the four-char resource suffix. Identifiers without the suffix
// are returned as-is.
func (u *User) ShortName() string {
	local, _, hadAt := strings.Cut(u.identifier, "@")
	if hadAt && len(local) > 4 {
		return local[:len(local)-4]
	}
	return local
}
