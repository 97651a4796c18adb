// Package bot contains the message dispatcher: it resolves the sender's
// clearance, finds the first matching command, and runs its effect against
// the command and user registries.
package bot

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nateu/dotty/internal/command"
	"github.com/Nateu/dotty/internal/security"
	"github.com/Nateu/dotty/internal/user"
)

const defaultTheme = "No theme set"

// ChatBot processes one message at a time against in-memory state. It holds
// non-owning references to both registries; a concurrent host must serialize
// calls to ProcessMessage.
type ChatBot struct {
	name     string
	theme    string
	users    *user.Registry
	commands *command.Registry
	log      zerolog.Logger
}

// New builds the dispatcher and registers the owner identity at OWNER level.
// Registration is an overwrite, so constructing twice over the same profile
// store is harmless.
func New(name, ownerIdentifier string, users *user.Registry, commands *command.Registry, log zerolog.Logger) (*ChatBot, error) {
	if err := users.RegisterUser(ownerIdentifier, security.Owner); err != nil {
		return nil, fmt.Errorf("register owner: %w", err)
	}
	return &ChatBot{
		name:     name,
		theme:    defaultTheme,
		users:    users,
		commands: commands,
		log:      log,
	}, nil
}

func (b *ChatBot) Name() string { return b.name }

// ProcessMessage runs the per-message flow. ok reports whether there is a
// response at all: silence (no match, refused registration) is ok == false
// with a nil error, distinct from an empty reply string. A non-nil error
// means a role change could not be persisted and no response was produced.
func (b *ChatBot) ProcessMessage(msg Message) (reply string, ok bool, err error) {
	level := b.userSecurityLevel(msg.SentBy)
	b.log.Debug().Str("sent_by", msg.SentBy).Stringer("level", level).Msg("processing message")

	cmd, found := b.commands.GetMatchingCommand(msg.Body, level)
	if !found {
		return "", false, nil
	}
	return b.processCommand(cmd, msg, level)
}

// userSecurityLevel resolves a sender to a clearance. Anyone can send a
// message, so unregistered senders get GUEST, never UNKNOWN.
func (b *ChatBot) userSecurityLevel(identifier string) security.Level {
	if !b.users.IsRegisteredUser(identifier) {
		return security.Guest
	}
	u, err := b.users.GetUser(identifier)
	if err != nil {
		panic(err) // unreachable: guarded by IsRegisteredUser
	}
	return u.ClearanceLevel()
}

func (b *ChatBot) processCommand(cmd command.Command, msg Message, level security.Level) (string, bool, error) {
	switch cmd.Identifier() {
	case command.ListCommands:
		return "These commands are available:\n" + b.commands.GetCommandsString(level), true, nil
	case command.ListSubstitutions:
		return "These substitutions are set: " + b.commands.GetSubstitutionListing(level), true, nil
	case command.GetSubstitution:
		return cmd.Display(), true, nil
	case command.ListUsers:
		return "The current users\n" + b.users.GetUserListing(), true, nil
	case command.GetTheme:
		return b.theme, true, nil
	case command.SetTheme:
		return b.setTheme(cmd, msg.Body), true, nil
	case command.SetUserSubstitution:
		return b.setSubstitution(cmd, msg.Body, security.User)
	case command.SetAdminSubstitution:
		return b.setSubstitution(cmd, msg.Body, security.Admin)
	case command.SetRoleUser:
		return b.grantRole(cmd, msg.Body, security.User)
	case command.SetRoleAdmin:
		return b.grantRole(cmd, msg.Body, security.Admin)
	case command.SetRoleOwner:
		return b.grantRole(cmd, msg.Body, security.Owner)
	case command.RemoveRoleUser:
		return b.revokeRole(cmd, msg.Body, security.User, security.Guest)
	case command.RemoveRoleAdmin:
		return b.revokeRole(cmd, msg.Body, security.Admin, security.User)
	case command.RemoveRoleOwner:
		return b.revokeRole(cmd, msg.Body, security.Owner, security.Admin)
	}
	return "", false, nil
}

func (b *ChatBot) setTheme(cmd command.Command, messageBody string) string {
	b.theme = messageBody[len(cmd.Trigger()):]
	return "Theme set to: " + b.theme
}

// setSubstitution splits the message on the matched separator and registers
// the pair at the given level. A refused registration is silent.
func (b *ChatBot) setSubstitution(cmd command.Command, messageBody string, level security.Level) (string, bool, error) {
	parts := strings.Split(messageBody, cmd.Trigger())
	if len(parts) != 2 {
		panic(fmt.Sprintf("bot: substitution message %q does not split once on %q", messageBody, cmd.Trigger()))
	}
	trigger, replacement := parts[0], parts[1]

	sub, ok := b.commands.RegisterSubstitution(trigger, replacement, level)
	if !ok {
		return "", false, nil
	}
	return fmt.Sprintf("When you say: \"%s\", I say: %s", sub.Trigger(), sub.Display()), true, nil
}

func (b *ChatBot) grantRole(cmd command.Command, messageBody string, destination security.Level) (string, bool, error) {
	target := messageBody[len(cmd.Trigger()):]
	if b.userSecurityLevel(target) >= destination {
		return "User already registered", true, nil
	}
	if err := b.users.RegisterUser(target, destination); err != nil {
		return "", false, err
	}
	return "User registered", true, nil
}

// revokeRole drops the target one tier below the revoked role. A target
// already below the revoked role has nothing to lose.
func (b *ChatBot) revokeRole(cmd command.Command, messageBody string, revoked, destination security.Level) (string, bool, error) {
	target := messageBody[len(cmd.Trigger()):]
	if b.userSecurityLevel(target) < revoked {
		return "Rights already revoked", true, nil
	}
	if err := b.users.RegisterUser(target, destination); err != nil {
		return "", false, err
	}
	return "Rights revoked", true, nil
}
