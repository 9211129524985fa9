package petscii

import (
	"fmt"
	"strings"
)

// CharsetChart renders the printable PETSCII character set as a
// multi-line document, 16 codes per row. Non-printable positions show
// as '.'; rows with nothing printable are omitted.
func CharsetChart() string {
	var lines []string
	lines = append(lines, "PETSCII CHARACTER SET")
	lines = append(lines, strings.Repeat("=", 40))
	lines = append(lines, "")

	for rowStart := 0x20; rowStart < 0x100; rowStart += 16 {
		cells := make([]string, 0, 16)
		printable := false
		for i := 0; i < 16; i++ {
			r := DecodeByte(byte(rowStart + i))
			if (r >= 0x20 && r < 0x7F) || r == Block || r == LeftHalf || r == LowerHalf || r == UpperHalf ||
				r == RightHalf || r == LightShade || r == MediumShade || r == DarkShade ||
				r == HLine || r == VLine || r == TLCorner || r == TRCorner || r == BLCorner ||
				r == BRCorner || r == Pi {
				cells = append(cells, string(r))
				printable = true
			} else {
				cells = append(cells, ".")
			}
		}
		if printable {
			lines = append(lines, fmt.Sprintf("0x%02X: %s", rowStart, strings.Join(cells, " ")))
		}
	}

	lines = append(lines, "")
	lines = append(lines, "Codes $00-$1F and $80-$9F are control codes.")
	lines = append(lines, "Code  $93 clears the screen; $FF is pi.")
	return strings.Join(lines, "\n")
}

// Box draws a rectangle with PETSCII box-drawing glyphs. Pass double
// for the double-line variant.
func Box(width, height int, double bool) string {
	hline, vline := HLine, VLine
	tl, tr, bl, br := TLCorner, TRCorner, BLCorner, BRCorner
	if double {
		hline, vline = '═', '║'
		tl, tr, bl, br = '╔', '╗', '╚', '╝'
	}

	inner := width - 2
	if inner < 0 {
		inner = 0
	}
	horiz := strings.Repeat(string(hline), inner)
	var lines []string
	lines = append(lines, string(tl)+horiz+string(tr))
	for i := 0; i < height-2; i++ {
		lines = append(lines, string(vline)+strings.Repeat(" ", inner)+string(vline))
	}
	if height > 1 {
		lines = append(lines, string(bl)+horiz+string(br))
	}
	return strings.Join(lines, "\n")
}
