package layout

import (
	"sync"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gompdf/danfe/internal/text"
)

// Font used by the description column, both when measuring and drawing
const (
	DescriptionFamily     = "Times"
	DescriptionStyle      = ""
	DescriptionSize       = 6.0
	DescriptionLineHeight = 3.0
)

// Measurer wraps text into the lines it occupies at a given column width
type Measurer interface {
	SplitLines(s string, width float64) []string
}

// FontMeasurer measures with fpdf core font metrics
type FontMeasurer struct {
	mu  sync.Mutex
	pdf *fpdf.Fpdf
}

// NewFontMeasurer creates a measurer for the given core font, in millimeters.
func NewFontMeasurer(family, style string, size float64) *FontMeasurer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont(family, style, size)
	return &FontMeasurer{pdf: pdf}
}

// Singleton measurer for the description font
var (
	measureOnce sync.Once
	measurer    *FontMeasurer
)

// DescriptionMeasurer returns the shared measurer for the description column.
func DescriptionMeasurer() *FontMeasurer {
	measureOnce.Do(func() {
		measurer = NewFontMeasurer(DescriptionFamily, DescriptionStyle, DescriptionSize)
	})
	return measurer
}

// SplitLines breaks s at the same points fpdf's MultiCell would for a cell
// of the given width. Lines are returned as UTF-8.
func (m *FontMeasurer) SplitLines(s string, width float64) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := m.pdf.SplitLines([]byte(text.Encode(s)), width)
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = text.Decode(string(l))
	}
	return lines
}

// StringWidth returns the width of s in millimeters.
func (m *FontMeasurer) StringWidth(s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pdf.GetStringWidth(text.Encode(s))
}
