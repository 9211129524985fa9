package menu

import (
	"strings"

	"github.com/azcoigreach/station-64/internal/screen"
	"github.com/azcoigreach/station-64/internal/session"
)

// EntryMenu is the pre-login matrix screen. Guests enter the board
// with G; real account login is reserved for a future persistence
// collaborator.
type EntryMenu struct {
	baseMenu
	registry *session.Registry
}

// NewEntryMenu constructs the ENTRY menu. The registry publishes the
// guest display name so other sessions' listings can read it.
func NewEntryMenu(registry *session.Registry) *EntryMenu {
	m := &EntryMenu{
		registry: registry,
		baseMenu: baseMenu{
			name:  "ENTRY",
			title: "STATION-64 BBS",
			aliases: map[string]string{
				"GUEST": "G",
				"LOGIN": "G",
				"HELP":  "?",
				"QUIT":  "Q",
				"EXIT":  "Q",
				"BYE":   "Q",
			},
		},
	}
	m.commands = map[string]Handler{
		"G": m.guestEntry,
		"?": m.help,
		"Q": m.quit,
	}
	return m
}

// Display renders the entry screen.
func (m *EntryMenu) Display(s *session.Session) string {
	w := screen.DefaultWidth
	var lines []string
	lines = append(lines, "")
	lines = append(lines, screen.Header(m.title, w, '='))
	lines = append(lines, "")
	lines = append(lines, screen.CenterText("A modern board for 8-bit hardware", w))
	lines = append(lines, "")
	lines = append(lines, "  "+screen.HighlightLetter(s.Kind, "G - Enter as Guest", "G", screen.LightGreen, screen.White))
	lines = append(lines, "  "+screen.HighlightLetter(s.Kind, "? - Help", "?", screen.LightGreen, screen.White))
	lines = append(lines, "  "+screen.HighlightLetter(s.Kind, "Q - Disconnect", "Q", screen.LightGreen, screen.White))
	lines = append(lines, "")
	lines = append(lines, screen.StatusBar("Unregistered caller", strings.ToUpper(s.Kind.String()), w))
	lines = append(lines, "")
	lines = append(lines, "Enter command: ")

	return screen.FormatScreen(s.Kind, strings.Join(lines, "\n"), true, screen.ColorNone)
}

// guestEntry moves the caller onto the main menu under the guest name.
// Output is intentionally empty: the menu changed, so the caller's
// redisplay renders the fresh screen.
func (m *EntryMenu) guestEntry(s *session.Session, token string) Result {
	s.CurrentMenu = "MAIN"
	m.registry.SetDisplayName(s.ID, GuestName)
	return Result{}
}

func (m *EntryMenu) help(s *session.Session, token string) Result {
	s.WaitingForAck = true
	w := screen.DefaultWidth
	var lines []string
	lines = append(lines, "")
	lines = append(lines, screen.Header("STATION-64 HELP", w, '='))
	lines = append(lines, "")
	lines = append(lines, "You have reached the entry screen.")
	lines = append(lines, "")
	lines = append(lines, "  G - Enter the board as a guest")
	lines = append(lines, "  ? - Show this help message")
	lines = append(lines, "  Q - Disconnect")
	lines = append(lines, "")
	lines = append(lines, "Press RETURN to continue...")
	return Result{Output: strings.Join(lines, "\n")}
}

func (m *EntryMenu) quit(s *session.Session, token string) Result {
	return Result{
		Output: "\n\nThank you for calling Station-64!\n\n" + GoodbyeMarker + "!\n",
		Action: ActionTerminate,
	}
}
