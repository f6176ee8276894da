package pdf

import (
	"strings"

	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/pagination"
)

// rowRule is the dashed separator drawn under each item of the table
type rowRule struct {
	dash  float64
	space float64
	// gray draws a thin light rule instead of the current pen
	gray bool
}

func (r rowRule) draw(c *canvas, x1, x2, y float64) {
	if r.gray {
		c.pdf.SetLineWidth(0.1)
		c.pdf.SetDrawColor(177, 177, 177)
	}
	c.dashedLine(x1, y, x2, y, r.dash, r.space)
	if r.gray {
		c.pdf.SetLineWidth(0.2)
		c.pdf.SetDrawColor(0, 0, 0)
	}
}

// drawProducts draws the items of one page assignment. The frame is sized
// from the rows the paginator accounted for, so an oversized item alone on
// its page stretches the box instead of being cut.
func (s *session) drawProducts(c *canvas, a pagination.Assignment, rule rowRule) {
	left, top := s.geo.Left, s.productsY
	right := left + s.columns.Width()
	height := layout.TableHeight(a.Rows)
	bottom := top + height

	c.font("B", 7)
	c.text(left+1, top-1, "DADOS DO PRODUTO/SERVIÇO")
	c.rect(left, top, right-left, height)

	c.font("B", 5)
	c.line(left, top+6, right, top+6)
	cur := layout.At(left, top+1)
	for _, col := range s.columns.Columns {
		c.line(cur.X+col.Width, top, cur.X+col.Width, bottom)
		c.moveTo(cur)
		if strings.Contains(col.Header, "\n") {
			c.multiCell(col.Width, 2, col.Header, layout.AlignCenter)
		} else {
			c.cell(col.Width, 4, col.Header, layout.AlignCenter)
		}
		cur = cur.Right(col.Width)
	}

	c.pdf.SetFont(layout.DescriptionFamily, layout.DescriptionStyle, layout.DescriptionSize)
	row := layout.At(left, top+6.5)
	for i := a.Start; i < a.End; i++ {
		item := s.items[i]
		cur := row
		for _, col := range s.columns.Columns {
			if col.IsDescription() {
				for n, line := range item.Lines {
					c.moveTo(cur.NextRow(cur.X, n))
					c.cell(col.Width, layout.RowHeight, line, col.Align)
				}
			} else {
				c.moveTo(cur)
				c.cell(col.Width, layout.RowHeight, col.Value(item.Item), col.Align)
			}
			cur = cur.Right(col.Width)
		}

		row = row.NextRow(left, item.Rows())
		if row.Y < bottom {
			rule.draw(c, left, right, row.Y-0.1)
		}
	}
}
