package command

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nateu/dotty/internal/security"
)

// Registry is the ordered collection of commands. Built-ins are seeded at
// construction and scanned before any substitution, because substitutions are
// only ever appended. There is no internal locking; callers serialize access.
type Registry struct {
	botName  string
	commands []Command
	log      zerolog.Logger
}

// NewRegistry builds a registry seeded with the built-in command set. The bot
// name is interpolated into the substitution help texts.
func NewRegistry(botName string, log zerolog.Logger) *Registry {
	r := &Registry{botName: botName, log: log}
	r.commands = []Command{
		NewExact(ListCommands, "Usage", "List all commands and their usage", security.User),
		NewExact(ListSubstitutions, "List", "List all substitutions", security.User),
		NewContains(SetUserSubstitution, " -> ",
			fmt.Sprintf("On the trigger (before) -> %s will respond with message (after) [USERS]", botName),
			security.Admin),
		NewContains(SetAdminSubstitution, " => ",
			fmt.Sprintf("On the trigger (before) => %s will respond with message (after) [ADMINS]", botName),
			security.Admin),
		NewExact(GetTheme, "Theme", "This will give back the current theme", security.User),
		NewStartsWith(SetTheme, "Set Theme ",
			`This will set a theme, anything after "set theme " will be the theme`, security.Admin),
		NewStartsWith(SetRoleUser, "Grant User ", "Command to grant a member user status", security.Admin),
		NewStartsWith(SetRoleAdmin, "Grant Admin ", "Command to grant a member admin status", security.Owner),
		NewStartsWith(SetRoleOwner, "Grant Owner ", "Command to grant a member owner status", security.Owner),
		NewStartsWith(RemoveRoleOwner, "Revoke Owner ", "Command to revoke a member owner status", security.Owner),
		NewStartsWith(RemoveRoleAdmin, "Revoke Admin ", "Command to revoke a member admin status", security.Owner),
		NewStartsWith(RemoveRoleUser, "Revoke User ", "Command to revoke a member user status", security.Admin),
		NewExact(ListUsers, "User List", "List all known Users", security.Admin),
	}
	return r
}

// GetMatchingCommand scans the commands in registration order and returns the
// first one that matches the message at the sender's clearance.
func (r *Registry) GetMatchingCommand(messageBody string, requestedBy security.Level) (Command, bool) {
	for _, c := range r.commands {
		if c.HasMatch(messageBody, requestedBy) {
			r.log.Debug().Str("trigger", c.Trigger()).Msg("matched command")
			return c, true
		}
	}
	return nil, false
}

// GetCommandsString renders every non-substitution command the requester has
// clearance for, one per line, in registration order.
func (r *Registry) GetCommandsString(requestedBy security.Level) string {
	var sb strings.Builder
	for _, c := range r.commands {
		if c.HasClearance(requestedBy) && c.Kind() != KindSubstitution {
			sb.WriteString(c.Display())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// GetSubstitutionListing returns the triggers of every substitution the
// requester has clearance for, comma-space joined.
func (r *Registry) GetSubstitutionListing(requestedBy security.Level) string {
	var triggers []string
	for _, c := range r.commands {
		if c.HasClearance(requestedBy) && c.Kind() == KindSubstitution {
			triggers = append(triggers, c.Trigger())
		}
	}
	return strings.Join(triggers, ", ")
}

// RegisterSubstitution registers or replaces a substitution. A registration is
// refused when an existing command with the same trigger requires a strictly
// higher clearance than requested, so a lower-privileged registration can
// never weaken a higher-privilege rule. Same-level registration replaces.
func (r *Registry) RegisterSubstitution(trigger, replacement string, level security.Level) (*SubstitutionCommand, bool) {
	for _, c := range r.commands {
		if c.Trigger() == trigger && level < c.SecurityLevel() {
			r.log.Debug().Str("trigger", trigger).Msg("substitution refused")
			return nil, false
		}
	}

	kept := r.commands[:0]
	for _, c := range r.commands {
		if c.Trigger() != trigger {
			kept = append(kept, c)
		}
	}
	newCommand := NewSubstitution(GetSubstitution, trigger, replacement, level)
	r.commands = append(kept, newCommand)
	r.log.Debug().Str("trigger", trigger).Stringer("level", level).Msg("substitution registered")
	return newCommand, true
}
