package pdf

import (
	"codeberg.org/go-pdf/fpdf"
	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/text"
)

// Every DANFE section is drawn with the Times core font
const family = "Times"

// canvas wraps an fpdf document with the handful of primitives the
// sections use. All strings go through text.Encode so accented Portuguese
// reaches the core fonts as windows-1252.
type canvas struct {
	pdf *fpdf.Fpdf
}

func (c *canvas) font(style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *canvas) text(x, y float64, s string) {
	c.pdf.Text(x, y, text.Encode(s))
}

func (c *canvas) cell(w, h float64, s string, align layout.Alignment) {
	c.pdf.CellFormat(w, h, text.Encode(s), "", 0, string(align), false, 0, "")
}

func (c *canvas) multiCell(w, h float64, s string, align layout.Alignment) {
	c.pdf.MultiCell(w, h, text.Encode(s), "", string(align), false)
}

func (c *canvas) moveTo(cur layout.Cursor) {
	c.pdf.SetXY(cur.X, cur.Y)
}

func (c *canvas) rect(x, y, w, h float64) {
	c.pdf.Rect(x, y, w, h, "D")
}

func (c *canvas) line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

// dashedLine draws a dashed segment and restores solid lines
func (c *canvas) dashedLine(x1, y1, x2, y2, dash, space float64) {
	c.pdf.SetDashPattern([]float64{dash, space}, 0)
	c.pdf.Line(x1, y1, x2, y2)
	c.pdf.SetDashPattern([]float64{}, 0)
}

// fit truncates s to limit millimeters in the current font
func (c *canvas) fit(s string, limit float64) string {
	return text.Truncate(s, limit, c.width)
}

func (c *canvas) width(s string) float64 {
	return c.pdf.GetStringWidth(text.Encode(s))
}

// rotated runs draw with the page rotated angle degrees around x, y
func (c *canvas) rotated(angle, x, y float64, draw func()) {
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(angle, x, y)
	draw()
	c.pdf.TransformEnd()
}

// watermark prints the homologation notice in gray, rotated around x, y
func (c *canvas) watermark(x, y float64) {
	c.pdf.SetTextColor(145, 145, 145)
	c.rotated(90, x, y, func() {
		c.font("B", 40)
		c.text(34, 20.5, "SEM VALOR FISCAL")
	})
	c.pdf.SetTextColor(0, 0, 0)
}
