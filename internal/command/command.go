// Package command holds the trigger-matched commands of the bot and the
// ordered registry that resolves an incoming message to the first command
// the sender is cleared for.
package command

import (
	"fmt"
	"strings"

	"github.com/Nateu/dotty/internal/security"
)

// Kind selects the match predicate of a command.
type Kind int

const (
	KindExact Kind = iota
	KindStartsWith
	KindContains
	KindSubstitution
)

// Command is the single contract every variant satisfies. HasMatch checks
// clearance before text: a command never matches for a sender who cannot
// trigger it.
type Command interface {
	Identifier() Identifier
	Trigger() string
	Kind() Kind
	SecurityLevel() security.Level
	HasClearance(requestedBy security.Level) bool
	HasMatch(messageBody string, requestedBy security.Level) bool
	Display() string
}

type base struct {
	identifier    Identifier
	trigger       string
	description   string
	securityLevel security.Level
}

func (c *base) Identifier() Identifier { return c.identifier }

func (c *base) Trigger() string { return c.trigger }

func (c *base) SecurityLevel() security.Level { return c.securityLevel }

func (c *base) triggerLower() string { return strings.ToLower(c.trigger) }

func (c *base) HasClearance(requestedBy security.Level) bool {
	return requestedBy >= c.securityLevel
}

// Display renders a built-in as `"<trigger>" - <description>`.
func (c *base) Display() string {
	return fmt.Sprintf("\"%s\" - %s", c.trigger, c.description)
}

// ExactCommand matches when the whole message equals the trigger,
// case-insensitively.
type ExactCommand struct{ base }

func NewExact(id Identifier, trigger, description string, level security.Level) *ExactCommand {
	return &ExactCommand{base{identifier: id, trigger: trigger, description: description, securityLevel: level}}
}

func (c *ExactCommand) Kind() Kind { return KindExact }

func (c *ExactCommand) HasMatch(messageBody string, requestedBy security.Level) bool {
	if !c.HasClearance(requestedBy) {
		return false
	}
	return strings.EqualFold(messageBody, c.trigger)
}

// StartsWithCommand matches when the message begins with the trigger; the
// remainder of the message is the command's payload.
type StartsWithCommand struct{ base }

func NewStartsWith(id Identifier, trigger, description string, level security.Level) *StartsWithCommand {
	return &StartsWithCommand{base{identifier: id, trigger: trigger, description: description, securityLevel: level}}
}

func (c *StartsWithCommand) Kind() Kind { return KindStartsWith }

func (c *StartsWithCommand) HasMatch(messageBody string, requestedBy security.Level) bool {
	if !c.HasClearance(requestedBy) {
		return false
	}
	return strings.HasPrefix(strings.ToLower(messageBody), c.triggerLower())
}

// ContainsCommand matches when the trigger occurs anywhere in the message.
type ContainsCommand struct{ base }

func NewContains(id Identifier, trigger, description string, level security.Level) *ContainsCommand {
	return &ContainsCommand{base{identifier: id, trigger: trigger, description: description, securityLevel: level}}
}

func (c *ContainsCommand) Kind() Kind { return KindContains }

func (c *ContainsCommand) HasMatch(messageBody string, requestedBy security.Level) bool {
	if !c.HasClearance(requestedBy) {
		return false
	}
	return strings.Contains(strings.ToLower(messageBody), c.triggerLower())
}

// SubstitutionCommand is a user-registered trigger/response pair. It matches
// like an exact command, and displays as its replacement text: printing the
// command is emitting its configured response.
type SubstitutionCommand struct {
	base
	replacement string
}

func NewSubstitution(id Identifier, trigger, replacement string, level security.Level) *SubstitutionCommand {
	return &SubstitutionCommand{
		base:        base{identifier: id, trigger: trigger, description: "substitution", securityLevel: level},
		replacement: replacement,
	}
}

func (c *SubstitutionCommand) Kind() Kind { return KindSubstitution }

func (c *SubstitutionCommand) Replacement() string { return c.replacement }

func (c *SubstitutionCommand) Display() string { return c.replacement }

func (c *SubstitutionCommand) HasMatch(messageBody string, requestedBy security.Level) bool {
	if !c.HasClearance(requestedBy) {
		return false
	}
	return strings.EqualFold(messageBody, c.trigger)
}
