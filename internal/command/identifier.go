package command

// Identifier tags what a matched command does. The dispatcher switches on it;
// the match predicate is a separate axis (see Kind).
type Identifier int

const (
	GetSubstitution Identifier = iota
	GetTheme
	ListCommands
	ListSubstitutions
	ListUsers
	SetAdminSubstitution
	SetUserSubstitution
	SetRoleAdmin
	SetRoleOwner
	SetRoleUser
	SetTheme
	RemoveRoleAdmin
	RemoveRoleOwner
	RemoveRoleUser
)
