package text

import "strings"

// WidthFunc measures a string in the current font, in user units
type WidthFunc func(string) float64

// Truncate drops trailing runes until s measures no more than limit.
// Trailing spaces left behind by the cut are removed as well.
func Truncate(s string, limit float64, width WidthFunc) string {
	if width == nil || width(s) <= limit {
		return s
	}
	runes := []rune(s)
	lo, hi := 0, len(runes)
	// longest prefix that fits; width is monotonic in the prefix length
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if width(string(runes[:mid])) <= limit {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return strings.TrimRight(string(runes[:lo]), " ")
}

// Collapse joins non empty pieces with a single space.
func Collapse(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
