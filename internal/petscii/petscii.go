// Package petscii implements the PETSCII <-> Unicode character codec used
// by the legacy transport.
//
// Reference: official C64 PETSCII table - https://sta.c64.org/cbm64pet.html
// Codes $00-$1F and $80-$9F are control codes, $93 is Clear screen, and
// $FF is the BASIC token for pi. Large runs of the graphic range alias the
// same glyph; that many-to-one mapping is intentional.
package petscii

// Clear is the PETSCII screen-clear control code ($93, CHR$(147)).
// It decodes to U+0093 so the renderer's legacy clear-screen output
// survives an encode/decode round trip.
const Clear byte = 0x93

// DecodeTable maps every PETSCII byte to a Unicode rune. Control codes
// decode to a space placeholder except CR ($0D), ESC ($1B, rendered as
// '['), and Clear ($93).
var DecodeTable = [256]rune{
	// 0x00-0x1F: control codes
	0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020,
	0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x000D, 0x0020, 0x0020,
	0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020,
	0x0020, 0x0020, 0x0020, 0x005B, 0x0020, 0x0020, 0x0020, 0x0020,

	// 0x20-0x7F: printable ASCII
	0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x0026, 0x0027,
	0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F,
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037,
	0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F,
	0x0040, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047,
	0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F,
	0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057,
	0x0058, 0x0059, 0x005A, 0x005B, 0x005C, 0x005D, 0x005E, 0x005F,
	0x0060, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067,
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F,
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077,
	0x0078, 0x0079, 0x007A, 0x007B, 0x007C, 0x007D, 0x007E, 0x007F,

	// 0x80-0x9F: control codes ($93 = Clear)
	0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020,
	0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020,
	0x0020, 0x0020, 0x0020, 0x0093, 0x0020, 0x0020, 0x0020, 0x0020,
	0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020, 0x0020,

	// 0xA0-0xBF: block graphics (heavily aliased)
	0x2588, 0x258C, 0x2584, 0x2580, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2590, 0x258C, 0x2584, 0x2580, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588,

	// 0xC0-0xCF: shades and box drawing
	0x2591, 0x2592, 0x2593, 0x2588, 0x2500, 0x2502, 0x250C, 0x2510,
	0x2514, 0x2518, 0x251C, 0x2524, 0x252C, 0x2534, 0x253C, 0x2588,

	// 0xD0-0xFE: full block ($E0-$FE are copies per the official table), $FF = pi
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588,
	0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x2588, 0x03C0,
}

// encodeTable is the reverse of DecodeTable. Built byte-ascending with
// first-entry-wins so aliased glyphs map back to their canonical code,
// and skipping the control ranges (except CR and Clear) so the space
// placeholder maps back to $20 rather than a color code.
var encodeTable = buildEncodeTable()

func buildEncodeTable() map[rune]byte {
	m := make(map[rune]byte, 256)
	for i := 0; i < 256; i++ {
		b := byte(i)
		if isControl(b) && b != 0x0D && b != Clear {
			continue
		}
		r := DecodeTable[i]
		if _, ok := m[r]; !ok {
			m[r] = b
		}
	}
	return m
}

func isControl(b byte) bool {
	return b < 0x20 || (b >= 0x80 && b < 0xA0)
}

// DecodeByte converts a single PETSCII byte to its Unicode rune.
// Total over 0-255; DecodeTable has an entry for every byte.
func DecodeByte(b byte) rune {
	return DecodeTable[b]
}

// EncodeRune converts a Unicode rune to a PETSCII byte. Runes without a
// table entry fall back to their raw code point when it fits in a byte,
// otherwise '?'.
func EncodeRune(r rune) byte {
	if b, ok := encodeTable[r]; ok {
		return b
	}
	if r >= 0 && r < 0x100 {
		return byte(r)
	}
	return '?'
}

// EncodeChar converts exactly one character to a PETSCII byte. Passing
// anything other than a single code point (including multi-code-point
// graphemes) yields '?'.
func EncodeChar(s string) byte {
	runes := []rune(s)
	if len(runes) != 1 {
		return '?'
	}
	return EncodeRune(runes[0])
}

// Graphic glyph constants, by canonical PETSCII code.
const (
	Block       = '█' // $A0 full block
	LeftHalf    = '▌' // $A1 left half block
	LowerHalf   = '▄' // $A2 lower half block
	UpperHalf   = '▀' // $A3 upper half block
	RightHalf   = '▐' // $B0 right half block
	LightShade  = '░' // $C0
	MediumShade = '▒' // $C1
	DarkShade   = '▓' // $C2
	HLine       = '─' // $C4
	VLine       = '│' // $C5
	TLCorner    = '┌' // $C6
	TRCorner    = '┐' // $C7
	BLCorner    = '└' // $C8
	BRCorner    = '┘' // $C9
	LeftT       = '├' // $CA
	RightT      = '┤' // $CB
	TopT        = '┬' // $CC
	BottomT     = '┴' // $CD
	Cross       = '┼' // $CE
	Pi          = 'π' // $FF
)
