// Package security defines the ordered clearance levels that gate every
// command in the bot. Levels are plain integers so two of them always
// compare; anything else simply does not compile.
package security

import "fmt"

// Level is a clearance tier. Higher values outrank lower ones.
type Level int

const (
	Unknown Level = 1
	Guest   Level = 3
	User    Level = 5
	Admin   Level = 7
	Owner   Level = 9
)

// String returns the level name as it appears in user listings.
func (l Level) String() string {
	switch l {
	case Unknown:
		return "UNKNOWN"
	case Guest:
		return "GUEST"
	case User:
		return "USER"
	case Admin:
		return "ADMIN"
	case Owner:
		return "OWNER"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Value returns the integer stored in persisted profiles.
func (l Level) Value() int { return int(l) }

// FromValue maps a stored integer back to a Level.
func FromValue(v int) (Level, error) {
	switch Level(v) {
	case Unknown, Guest, User, Admin, Owner:
		return Level(v), nil
	}
	return Unknown, fmt.Errorf("security: no level with value %d", v)
}
