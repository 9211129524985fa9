package petscii

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Decoder converts a PETSCII byte stream to UTF-8 text. It implements
// transform.Transformer and never fails: every byte has a table entry.
type Decoder struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r := DecodeByte(src[nSrc])
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

// Encoder converts UTF-8 text to a PETSCII byte stream, one byte per
// rune. It implements transform.Transformer and never fails: unmapped
// runes fall back per EncodeRune.
type Encoder struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = EncodeRune(r)
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Decode converts PETSCII bytes to a Unicode string. Total over the
// full 0-255 byte range.
func Decode(data []byte) string {
	out, _, _ := transform.Bytes(Decoder{}, data)
	return string(out)
}

// Encode converts a Unicode string to PETSCII bytes. Total over
// arbitrary text.
func Encode(text string) []byte {
	out, _, _ := transform.Bytes(Encoder{}, []byte(text))
	return out
}
