package text

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Replacement is written in place of runes the core fonts cannot show
const Replacement = '?'

// Encode converts UTF-8 text into the windows-1252 bytes expected by the
// PDF core fonts. Input is NFC normalized first so decomposed accents
// (e + U+0301) still map to a single code point.
func Encode(s string) string {
	if isASCII(s) {
		return s
	}
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(Replacement)
	}
	return b.String()
}

// Decode turns windows-1252 bytes back into UTF-8.
func Decode(s string) string {
	if isASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		b.WriteRune(charmap.Windows1252.DecodeByte(s[i]))
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
