package screen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/azcoigreach/station-64/internal/types"
)

func TestClearScreenPerKind(t *testing.T) {
	if got := ClearScreen(types.ConnLegacy); got != "" {
		t.Errorf("legacy clear = %q, want PETSCII $93", got)
	}
	if got := ClearScreen(types.ConnFramed); got != "\033[2J\033[H" {
		t.Errorf("framed clear = %q", got)
	}
}

func TestSetColorBounds(t *testing.T) {
	if got := SetColor(types.ConnFramed, LightRed); got != "\033[91m" {
		t.Errorf("LightRed = %q", got)
	}
	if got := SetColor(types.ConnLegacy, ColorNone); got != "" {
		t.Errorf("ColorNone = %q, want empty", got)
	}
	if got := SetColor(types.ConnLegacy, Color(99)); got != "" {
		t.Errorf("out-of-range color = %q, want empty", got)
	}
}

func TestCenterText(t *testing.T) {
	got := CenterText("HI", 10)
	if got != "    HI" {
		t.Errorf("CenterText = %q", got)
	}
	if got := CenterText("0123456789AB", 10); got != "0123456789" {
		t.Errorf("over-long text = %q, want truncated to width", got)
	}
	if got := CenterText("exact!", 6); got != "exact!" {
		t.Errorf("exact-width text = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("abcdefghij", 4)
	if got != "abcd\nefgh\nij" {
		t.Errorf("WrapText = %q", got)
	}
	// Short lines pass through, blank lines survive.
	got = WrapText("ab\n\ncd", 4)
	if got != "ab\n\ncd" {
		t.Errorf("WrapText short = %q", got)
	}
}

func TestTruncateLine(t *testing.T) {
	if got := TruncateLine("abcdef", 4); got != "abcd" {
		t.Errorf("TruncateLine = %q", got)
	}
	if got := TruncateLine("ab", 4); got != "ab" {
		t.Errorf("TruncateLine short = %q", got)
	}
}

func TestHeader(t *testing.T) {
	got := Header("TITLE", 11, '=')
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("Header lines = %d, want 3", len(lines))
	}
	if lines[0] != "===========" || lines[2] != "===========" {
		t.Errorf("borders = %q / %q", lines[0], lines[2])
	}
	if !strings.Contains(lines[1], "TITLE") {
		t.Errorf("title line = %q", lines[1])
	}
}

func TestStatusBarPadding(t *testing.T) {
	got := StatusBar("L", "R", 10)
	if len(got) != 10 {
		t.Errorf("StatusBar length = %d, want 10 (%q)", len(got), got)
	}
	if !strings.HasPrefix(got, "L") || !strings.HasSuffix(got, "R") {
		t.Errorf("StatusBar = %q", got)
	}
}

func TestStatusBarOverflow(t *testing.T) {
	got := StatusBar("averylongleftside", "right", 15)
	if got != "averylong right" {
		t.Errorf("StatusBar overflow = %q", got)
	}
}

func TestWidthHelpersCountRunes(t *testing.T) {
	// Block glyphs are multi-byte in UTF-8; width math must see them
	// as one column each.
	if got := CenterText("███", 6); got != " ███" {
		t.Errorf("CenterText glyphs = %q", got)
	}
	if got := TruncateLine("████", 2); got != "██" {
		t.Errorf("TruncateLine glyphs = %q", got)
	}
	if !utf8.ValidString(TruncateLine("███", 2)) {
		t.Error("TruncateLine produced invalid UTF-8")
	}
	if got := WrapText("██████", 2); got != "██\n██\n██" {
		t.Errorf("WrapText glyphs = %q", got)
	}

	bar := StatusBar("░░", "▓▓", 8)
	if n := len([]rune(bar)); n != 8 {
		t.Errorf("StatusBar glyph length = %d runes, want 8 (%q)", n, bar)
	}
	overflow := StatusBar("████████", "▓▓", 7)
	if !utf8.ValidString(overflow) {
		t.Errorf("StatusBar overflow produced invalid UTF-8: %q", overflow)
	}
	if got := len([]rune(overflow)); got != 7 {
		t.Errorf("StatusBar overflow length = %d runes, want 7 (%q)", got, overflow)
	}
}

func TestHighlightLetterAbsent(t *testing.T) {
	if got := HighlightLetter(types.ConnFramed, "HELLO", "Z", White, Grey); got != "HELLO" {
		t.Errorf("absent letter should return text unchanged, got %q", got)
	}
}

func TestHighlightLetterPresent(t *testing.T) {
	got := HighlightLetter(types.ConnFramed, "Quit", "Q", White, Grey)
	if !strings.Contains(got, "Q") || !strings.Contains(got, "uit") {
		t.Errorf("HighlightLetter = %q", got)
	}
	if !strings.Contains(got, ansiColors[White]) {
		t.Errorf("letter color missing: %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("missing trailing reset: %q", got)
	}
}

func TestHighlightLetterCaseInsensitive(t *testing.T) {
	got := HighlightLetter(types.ConnFramed, "quit", "Q", White, Grey)
	if got == "quit" {
		t.Error("case-insensitive match should have fired")
	}
}

func TestFormatScreen(t *testing.T) {
	got := FormatScreen(types.ConnLegacy, "BODY", true, ColorNone)
	if got != "BODY" {
		t.Errorf("FormatScreen legacy = %q", got)
	}

	got = FormatScreen(types.ConnFramed, "BODY", false, Cyan)
	if !strings.HasPrefix(got, ansiColors[Cyan]) || !strings.HasSuffix(got, ansiReset) {
		t.Errorf("FormatScreen framed = %q", got)
	}
	if strings.Contains(got, "\033[2J") {
		t.Errorf("unexpected clear in %q", got)
	}
}
