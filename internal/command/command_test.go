package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nateu/dotty/internal/security"
)

func TestExactCommandMatchesCaseInsensitively(t *testing.T) {
	c := NewExact(GetTheme, "Theme", "current theme", security.User)

	assert.True(t, c.HasMatch("Theme", security.User))
	assert.True(t, c.HasMatch("tHeMe", security.Owner))
	assert.False(t, c.HasMatch("Theme please", security.User))
	assert.False(t, c.HasMatch("The", security.User))
}

func TestStartsWithCommandMatchesPrefix(t *testing.T) {
	c := NewStartsWith(SetTheme, "Set Theme ", "sets the theme", security.Admin)

	assert.True(t, c.HasMatch("Set Theme Atlantis", security.Admin))
	assert.True(t, c.HasMatch("set theme Atlantis", security.Owner))
	assert.False(t, c.HasMatch("Please Set Theme Atlantis", security.Admin))
}

func TestContainsCommandMatchesAnywhere(t *testing.T) {
	c := NewContains(SetUserSubstitution, " -> ", "registers a substitution", security.Admin)

	assert.True(t, c.HasMatch("hello -> world", security.Admin))
	assert.False(t, c.HasMatch("hello->world", security.Admin))
}

func TestMatchFailsClosedWithoutClearance(t *testing.T) {
	c := NewExact(GetTheme, "Theme", "current theme", security.User)

	assert.False(t, c.HasMatch("Theme", security.Guest))
	assert.False(t, c.HasMatch("Theme", security.Unknown))
}

func TestHasClearanceIsInclusive(t *testing.T) {
	c := NewStartsWith(SetRoleUser, "Grant User ", "grants user status", security.Admin)

	assert.True(t, c.HasClearance(security.Admin))
	assert.True(t, c.HasClearance(security.Owner))
	assert.False(t, c.HasClearance(security.User))
}

func TestBuiltInDisplayFormat(t *testing.T) {
	c := NewExact(ListCommands, "Usage", "List all commands and their usage", security.User)

	assert.Equal(t, `"Usage" - List all commands and their usage`, c.Display())
}

func TestSubstitutionCommand(t *testing.T) {
	c := NewSubstitution(GetSubstitution, "Admin", "Top tier", security.Admin)

	assert.Equal(t, KindSubstitution, c.Kind())
	assert.True(t, c.HasMatch("admin", security.Admin))
	assert.False(t, c.HasMatch("admin", security.User), "clearance gates the substitution itself")
	// displaying a substitution is emitting its response
	assert.Equal(t, "Top tier", c.Display())
	assert.Equal(t, "Top tier", c.Replacement())
}
