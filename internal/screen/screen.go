// Package screen renders transport-polymorphic terminal output: the
// same logical call produces PETSCII control codes for legacy
// connections and ANSI/VT escape sequences for framed ones.
package screen

import (
	"fmt"
	"strings"

	"github.com/azcoigreach/station-64/internal/types"
)

// Color is a C64 palette index (0-15).
type Color int

const (
	Black Color = iota
	White
	Red
	Cyan
	Purple
	Green
	Blue
	Yellow
	Orange
	Brown
	LightRed
	DarkGrey
	Grey
	LightGreen
	LightBlue
	LightGrey
)

// ColorNone disables optional coloring in FormatScreen.
const ColorNone Color = -1

// ansiColors maps the C64 palette to SGR sequences. Orange and brown
// have no standard 8-color SGR equivalent and use 256-color codes.
var ansiColors = [16]string{
	Black:      "\033[30m",
	White:      "\033[37m",
	Red:        "\033[31m",
	Cyan:       "\033[36m",
	Purple:     "\033[35m",
	Green:      "\033[32m",
	Blue:       "\033[34m",
	Yellow:     "\033[33m",
	Orange:     "\033[38;5;208m",
	Brown:      "\033[38;5;130m",
	LightRed:   "\033[91m",
	DarkGrey:   "\033[90m",
	Grey:       "\033[37m",
	LightGreen: "\033[92m",
	LightBlue:  "\033[94m",
	LightGrey:  "\033[97m",
}

// ANSI control sequences used for framed connections.
const (
	ansiReset       = "\033[0m"
	ansiClearScreen = "\033[2J"
	ansiCursorHome  = "\033[H"
	ansiReverse     = "\033[7m"
	ansiBold        = "\033[1m"
)

// legacyClearScreen is PETSCII $93 (CHR$(147)), the C64 clear-screen
// control code. Kept in sync with petscii.Clear.
const legacyClearScreen = ""

// DefaultWidth is the legacy display's native column count.
const DefaultWidth = 40

// ClearScreen returns the clear-screen sequence for the connection kind.
func ClearScreen(kind types.ConnKind) string {
	if kind == types.ConnFramed {
		return ansiClearScreen + ansiCursorHome
	}
	return legacyClearScreen
}

// SetColor returns the sequence that switches to the given palette
// color. Legacy terminals get the same ANSI SGR codes as framed ones:
// PETSCII color control codes exist, but C64 telnet clients in the
// field accept ANSI, so both transports share one table. This is a
// compatibility choice, not a protocol guarantee.
func SetColor(kind types.ConnKind, color Color) string {
	if color < 0 || int(color) >= len(ansiColors) {
		return ""
	}
	return ansiColors[color]
}

// ResetColor returns the sequence that restores the default color.
func ResetColor(kind types.ConnKind) string {
	return ansiReset
}

// SetReverse enables or disables reverse video. ANSI on both transport
// kinds, same fallback rationale as SetColor.
func SetReverse(kind types.ConnKind, enable bool) string {
	if enable {
		return ansiReverse
	}
	return ansiReset
}

// SetBold enables or disables bold text.
func SetBold(kind types.ConnKind, enable bool) string {
	if enable {
		return ansiBold
	}
	return ansiReset
}

// MoveCursor moves the cursor to a 1-based row and column.
func MoveCursor(kind types.ConnKind, row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// Width math throughout counts runes, not bytes: decoded PETSCII
// graphics are multi-byte in UTF-8, and a byte-boundary cut would
// split a glyph into invalid UTF-8.

// CenterText pads text on the left so it sits centered within width.
// Over-long text is right-truncated rather than erroring.
func CenterText(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	padding := (width - len(runes)) / 2
	return strings.Repeat(" ", padding) + text
}

// WrapText hard-wraps each line at the width boundary (not at word
// boundaries).
func WrapText(text string, width int) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		if len(runes) <= width {
			lines = append(lines, line)
			continue
		}
		for i := 0; i < len(runes); i += width {
			end := i + width
			if end > len(runes) {
				end = len(runes)
			}
			lines = append(lines, string(runes[i:end]))
		}
	}
	return strings.Join(lines, "\n")
}

// TruncateLine cuts a line at width.
func TruncateLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width])
}

// Header builds a bordered, centered header:
//
//	========================================
//	               STATION-64
//	========================================
func Header(text string, width int, borderChar rune) string {
	border := strings.Repeat(string(borderChar), width)
	return border + "\n" + CenterText(text, width) + "\n" + border
}

// Separator returns a horizontal rule of the given width.
func Separator(width int, char rune) string {
	return strings.Repeat(string(char), width)
}

// StatusBar lays out left and right text with the gap space-padded so
// the total length equals width. If the two sides don't fit, the left
// text is truncated to width - len(right) - 1 and a single space
// separates them.
func StatusBar(left, right string, width int) string {
	leftRunes := []rune(left)
	rightLen := len([]rune(right))
	if len(leftRunes)+rightLen >= width {
		available := width - rightLen - 1
		if available > 0 && available < len(leftRunes) {
			left = string(leftRunes[:available])
		} else if available <= 0 {
			left = ""
		}
		return left + " " + right
	}
	return left + strings.Repeat(" ", width-len(leftRunes)-rightLen) + right
}

// HighlightLetter wraps the first case-insensitive occurrence of letter
// within text in letterColor, with the surrounding text in textColor.
// Returns text unchanged when the letter is absent.
func HighlightLetter(kind types.ConnKind, text, letter string, letterColor, textColor Color) string {
	idx := strings.Index(strings.ToUpper(text), strings.ToUpper(letter))
	if letter == "" || idx == -1 {
		return text
	}

	var b strings.Builder
	b.WriteString(SetColor(kind, textColor))
	b.WriteString(text[:idx])
	b.WriteString(SetColor(kind, letterColor))
	b.WriteString(text[idx : idx+len(letter)])
	b.WriteString(ResetColor(kind))
	b.WriteString(SetColor(kind, textColor))
	b.WriteString(text[idx+len(letter):])
	b.WriteString(ResetColor(kind))
	return b.String()
}

// FormatScreen assembles a full screen: optional clear, optional color,
// content, color reset.
func FormatScreen(kind types.ConnKind, content string, clear bool, color Color) string {
	var b strings.Builder
	if clear {
		b.WriteString(ClearScreen(kind))
	}
	if color != ColorNone {
		b.WriteString(SetColor(kind, color))
	}
	b.WriteString(content)
	if color != ColorNone {
		b.WriteString(ResetColor(kind))
	}
	return b.String()
}
