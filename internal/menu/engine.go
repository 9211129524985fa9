package menu

import (
	"fmt"
	"log"
	"strings"

	"github.com/azcoigreach/station-64/internal/logging"
	"github.com/azcoigreach/station-64/internal/pager"
	"github.com/azcoigreach/station-64/internal/screen"
	"github.com/azcoigreach/station-64/internal/session"
	"github.com/azcoigreach/station-64/internal/types"
)

// Engine owns the process-wide menu registry and drives per-session
// menu transitions. Menus are registered at startup and read-only
// afterwards; ProcessInput performs no I/O and never blocks, so it is
// safe to call synchronously from any connection goroutine.
type Engine struct {
	registry    *session.Registry
	menus       map[string]Menu
	entryMenu   string
	defaultMenu string
}

// NewEngine creates an engine over the shared session registry.
// entryMenu is where new sessions start; defaultMenu is the fallback
// whenever a session's current menu identifier no longer resolves.
func NewEngine(registry *session.Registry, entryMenu, defaultMenu string) *Engine {
	return &Engine{
		registry:    registry,
		menus:       make(map[string]Menu),
		entryMenu:   strings.ToUpper(entryMenu),
		defaultMenu: strings.ToUpper(defaultMenu),
	}
}

// Register adds a menu to the registry. Call only during startup.
func (e *Engine) Register(m Menu) {
	e.menus[strings.ToUpper(m.Name())] = m
}

// Registry exposes the shared session registry.
func (e *Engine) Registry() *session.Registry {
	return e.registry
}

// CreateSession registers a new session positioned at the entry menu.
func (e *Engine) CreateSession(kind types.ConnKind, remoteAddr string) *session.Session {
	s := e.registry.Create(kind, remoteAddr, e.entryMenu)
	logging.Debug("session %s created (%s, %s)", s.ID, kind, remoteAddr)
	return s
}

// CloseSession deregisters a session. Idempotent; transports call it
// on disconnect, quit, or I/O failure.
func (e *Engine) CloseSession(s *session.Session) {
	s.Alive = false
	e.registry.Remove(s.ID)
	logging.Debug("session %s closed", s.ID)
}

// resolveMenu returns the session's current menu, resetting the
// session to the default menu when the identifier does not resolve.
// The fallback is silent: a bad transition must never be fatal.
func (e *Engine) resolveMenu(s *session.Session) Menu {
	if m, ok := e.menus[s.CurrentMenu]; ok {
		return m
	}
	if s.CurrentMenu != "" {
		log.Printf("WARN: session %s on unknown menu %q, resetting to %s", s.ID, s.CurrentMenu, e.defaultMenu)
	}
	s.CurrentMenu = e.defaultMenu
	return e.menus[e.defaultMenu]
}

// ProcessInput consumes one command line and returns the response text
// plus whether the caller should render the full menu screen
// afterwards. The evaluation order below is the engine's behavioral
// contract: ack handling, then menu resolution, then pagination, then
// command dispatch.
func (e *Engine) ProcessInput(s *session.Session, rawLine string) (string, bool) {
	s.Touch()

	trimmed := strings.TrimSpace(rawLine)

	if s.WaitingForAck {
		s.WaitingForAck = false
		if trimmed == "" {
			// The returned text is the menu itself; no second render.
			return e.GetScreen(s), false
		}
		// Non-blank input while waiting: treat as a fresh command.
	}

	m := e.resolveMenu(s)

	if s.Pager != nil {
		if out, done := e.advancePager(s, trimmed); done {
			return out, false
		}
		// Any other input aborts pagination and falls through to
		// normal command resolution with the same line.
	}

	token := strings.ToUpper(trimmed)
	h, ok := m.Lookup(token)
	if !ok {
		if canonical, aliased := m.Aliases()[token]; aliased {
			h, ok = m.Lookup(canonical)
		}
	}
	if !ok {
		return e.invalidCommand(s, trimmed), !s.WaitingForAck
	}

	result := h(s, token)
	if result.Action == ActionTerminate {
		s.Alive = false
	}

	showMenu := !s.WaitingForAck && s.Pager == nil
	return result.Output, showMenu
}

// advancePager handles input while a page cursor is active. done=false
// means the input ended pagination and should be re-dispatched as a
// command.
func (e *Engine) advancePager(s *session.Session, trimmed string) (string, bool) {
	cursor := s.Pager
	switch {
	case trimmed == "":
		cursor.Index++
		if cursor.Index >= len(cursor.Pages) {
			s.Pager = nil
			return e.GetScreen(s), true
		}
		return pager.FormatPage(cursor.Pages[cursor.Index], cursor.Index, len(cursor.Pages)), true
	case strings.EqualFold(trimmed, "Q"):
		s.Pager = nil
		return e.GetScreen(s), true
	default:
		s.Pager = nil
		return "", false
	}
}

// invalidCommand builds the colorized unknown-command message. The
// session is left untouched; an unknown token is user input, not an
// error.
func (e *Engine) invalidCommand(s *session.Session, token string) string {
	return fmt.Sprintf("%sInvalid command: %s%s\nType ? for help.\n",
		screen.SetColor(s.Kind, screen.LightRed), token, screen.ResetColor(s.Kind))
}

// GetScreen renders the full screen of the session's current menu,
// with the same default-menu fallback as ProcessInput.
func (e *Engine) GetScreen(s *session.Session) string {
	return e.resolveMenu(s).Display(s)
}
