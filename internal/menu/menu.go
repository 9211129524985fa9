// Package menu implements the per-session menu state machine: command
// dispatch with per-menu alias tables, the waiting-for-acknowledgement
// sub-mode, and pagination advancement.
package menu

import (
	"github.com/azcoigreach/station-64/internal/session"
)

// Action is a handler's verdict on the session lifecycle. Termination
// is an explicit signal rather than output-text sniffing, so an
// informational message that happens to contain the goodbye text can
// never disconnect anyone.
type Action int

const (
	// ActionContinue keeps the session running.
	ActionContinue Action = iota
	// ActionTerminate clears the session's liveness flag.
	ActionTerminate
)

// Result is what a command handler produces.
type Result struct {
	Output string
	Action Action
}

// Handler executes one menu command. Handlers are the only code that
// may set waiting-for-ack, change the current menu, install or clear a
// page cursor, set the authentication flag and display name, or
// request termination.
type Handler func(s *session.Session, token string) Result

// Menu is one registered screen of the board. Menus are immutable
// after registration.
type Menu interface {
	// Name is the registry identifier, uppercase by convention.
	Name() string
	// Title is the human-readable heading.
	Title() string
	// Display renders the full menu screen for the session.
	Display(s *session.Session) string
	// Lookup resolves an uppercase command token to its handler.
	Lookup(token string) (Handler, bool)
	// Aliases maps synonym tokens to canonical command tokens. Alias
	// scope is per-menu; the dispatcher consults this table only after
	// an exact Lookup miss.
	Aliases() map[string]string
}

// GuestName is the display name assigned by the guest-entry command.
const GuestName = "GUEST"

// GoodbyeMarker appears in the quit handler's farewell text. Kept for
// compatibility with clients and tests that watch for it; termination
// itself is signaled via ActionTerminate.
const GoodbyeMarker = "Goodbye"

// baseMenu carries the common command/alias tables for concrete menus.
type baseMenu struct {
	name     string
	title    string
	commands map[string]Handler
	aliases  map[string]string
}

func (m *baseMenu) Name() string  { return m.name }
func (m *baseMenu) Title() string { return m.title }

func (m *baseMenu) Lookup(token string) (Handler, bool) {
	h, ok := m.commands[token]
	return h, ok
}

func (m *baseMenu) Aliases() map[string]string { return m.aliases }
