// Package format holds the locale conventions printed on fiscal documents:
// Brazilian number grouping, CPF/CNPJ masks, dates and invoice numbers.
package format

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// freightModes maps modFrete codes to their printed label
var freightModes = map[string]string{
	"0": "0 - Emitente",
	"1": "1 - Dest/Rem",
	"2": "2 - Terceiros",
	"3": "3 - Próprio/Rem",
	"4": "4 - Próprio/Dest",
	"9": "9 - Sem Frete",
}

// Number formats a decimal string with the given precision using "." as the
// group separator and "," as the decimal separator (1.234,56).
// Unparsable input yields an empty string.
func Number(s string, precision int) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if precision < 0 {
		precision = 0
	}

	raw := strconv.FormatFloat(v, 'f', precision, 64)
	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}

	intPart, frac := raw, ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		intPart, frac = raw[:i], raw[i+1:]
	}

	out := sign + group(intPart, '.')
	if frac != "" {
		out += "," + frac
	}
	return out
}

// group inserts sep every three digits from the right
func group(digits string, sep byte) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Digits strips every non-digit character from s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// CPFCNPJ masks a taxpayer id. More than 11 digits is treated as a CNPJ
// (XX.XXX.XXX/XXXX-XX), anything else as a CPF (XXX.XXX.XXX-XX). Both are
// left padded with zeros and cut to their fixed length.
func CPFCNPJ(s string) string {
	d := Digits(s)
	if d == "" {
		return ""
	}
	if len(d) > 11 {
		d = fixed(d, 14)
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
	d = fixed(d, 11)
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// fixed left pads with zeros up to n and truncates to n
func fixed(s string, n int) string {
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s[:n]
}

// Date splits an ISO 8601 timestamp (2024-03-05T14:22:10-03:00) into its
// dd/mm/yyyy date and hh:mm:ss time parts. Short input yields what is present.
func Date(utc string) (string, string) {
	parts := strings.Split(slice(utc, 0, 10), "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/"), slice(utc, 11, 19)
}

func slice(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// Chunks splits s into consecutive pieces of n bytes; the last one may be shorter.
func Chunks(s string, n int) []string {
	if n <= 0 || s == "" {
		return nil
	}
	out := make([]string, 0, (len(s)+n-1)/n)
	for start := 0; start < len(s); start += n {
		end := start + n
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[start:end])
	}
	return out
}

// AccessKey renders an access key in groups of four digits.
func AccessKey(key string) string {
	return strings.Join(Chunks(key, 4), " ")
}

// NFNumber zero pads an invoice number to nine digits grouped by "."
// (1234 -> 000.001.234). Non numeric input is returned unchanged.
func NFNumber(s string) string {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return s
	}
	digits := strconv.FormatUint(n, 10)
	if len(digits) < 9 {
		digits = strings.Repeat("0", 9-len(digits)) + digits
	}
	return group(digits, '.')
}

// Freight returns the printed label of a modFrete code. Unknown codes are
// printed as they are.
func Freight(mod string) string {
	if label, ok := freightModes[mod]; ok {
		return label
	}
	return mod
}

// IsBlank reports whether s has no printable content.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
