package menu

import (
	"fmt"
	"strings"

	"github.com/azcoigreach/station-64/internal/pager"
	"github.com/azcoigreach/station-64/internal/petscii"
	"github.com/azcoigreach/station-64/internal/screen"
	"github.com/azcoigreach/station-64/internal/session"
)

// charsetPageLines bounds the charset viewer's page size so a page plus
// footer fits a 25-row legacy display.
const charsetPageLines = 12

// MainMenu is the board's main screen.
type MainMenu struct {
	baseMenu
	registry *session.Registry
}

// NewMainMenu constructs the MAIN menu. The registry feeds the
// who's-online listing.
func NewMainMenu(registry *session.Registry) *MainMenu {
	m := &MainMenu{
		baseMenu: baseMenu{
			name:  "MAIN",
			title: "STATION-64 BBS",
			aliases: map[string]string{
				"CHARSET": "C",
				"WHO":     "W",
				"USERS":   "W",
				"HELP":    "?",
				"QUIT":    "Q",
				"EXIT":    "Q",
				"BYE":     "Q",
			},
		},
		registry: registry,
	}
	m.commands = map[string]Handler{
		"C": m.showCharset,
		"W": m.whoIsOnline,
		"?": m.help,
		"Q": m.quit,
	}
	return m
}

// Display renders the main menu screen.
func (m *MainMenu) Display(s *session.Session) string {
	w := screen.DefaultWidth
	name := s.DisplayName
	if name == "" {
		name = GuestName
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, screen.Header(m.title, w, '='))
	lines = append(lines, "")
	lines = append(lines, "Welcome to Station-64!")
	lines = append(lines, "")
	lines = append(lines, "Commands:")
	lines = append(lines, "  "+screen.HighlightLetter(s.Kind, "C - View PETSCII Character Set", "C", screen.LightGreen, screen.White))
	lines = append(lines, "  "+screen.HighlightLetter(s.Kind, "W - Who's Online", "W", screen.LightGreen, screen.White))
	lines = append(lines, "  "+screen.HighlightLetter(s.Kind, "? - Show Help", "?", screen.LightGreen, screen.White))
	lines = append(lines, "  "+screen.HighlightLetter(s.Kind, "Q - Quit", "Q", screen.LightGreen, screen.White))
	lines = append(lines, "")
	lines = append(lines, screen.StatusBar("User: "+name, strings.ToUpper(s.Kind.String()), w))
	lines = append(lines, "")
	lines = append(lines, "Enter command: ")

	return screen.FormatScreen(s.Kind, strings.Join(lines, "\n"), true, screen.ColorNone)
}

// showCharset opens the paginated charset viewer. Blank lines advance
// the cursor; Q aborts it.
func (m *MainMenu) showCharset(s *session.Session, token string) Result {
	pages := pager.Paginate(petscii.CharsetChart(), charsetPageLines)
	s.Pager = &session.PageCursor{Pages: pages, Index: 0, PageSize: charsetPageLines}
	return Result{Output: "\n" + pager.FormatPage(pages[0], 0, len(pages))}
}

func (m *MainMenu) whoIsOnline(s *session.Session, token string) Result {
	s.WaitingForAck = true
	w := screen.DefaultWidth

	var lines []string
	lines = append(lines, "")
	lines = append(lines, screen.Header("CALLERS ONLINE", w, '-'))
	for i, info := range m.registry.ListActive() {
		name := info.DisplayName
		if name == "" {
			name = "(connecting)"
		}
		marker := " "
		if info.ID == s.ID {
			marker = "*"
		}
		lines = append(lines, screen.TruncateLine(
			fmt.Sprintf("%s %2d. %-12s %s", marker, i+1, name, info.Kind), w))
	}
	lines = append(lines, "")
	lines = append(lines, "Press RETURN to continue...")
	return Result{Output: strings.Join(lines, "\n")}
}

func (m *MainMenu) help(s *session.Session, token string) Result {
	s.WaitingForAck = true
	w := screen.DefaultWidth

	var lines []string
	lines = append(lines, "")
	lines = append(lines, screen.Header("STATION-64 HELP", w, '='))
	lines = append(lines, "")
	lines = append(lines, "This is a modern BBS for the")
	lines = append(lines, "Commodore 64.")
	lines = append(lines, "")
	lines = append(lines, "Available commands:")
	lines = append(lines, "  C - View the PETSCII character set")
	lines = append(lines, "  W - List callers currently online")
	lines = append(lines, "  ? - Show this help message")
	lines = append(lines, "  Q - Quit and disconnect")
	lines = append(lines, "")
	lines = append(lines, "Press RETURN to continue...")
	return Result{Output: strings.Join(lines, "\n")}
}

func (m *MainMenu) quit(s *session.Session, token string) Result {
	return Result{
		Output: "\n\nThank you for calling Station-64!\n\n" + GoodbyeMarker + "!\n",
		Action: ActionTerminate,
	}
}
