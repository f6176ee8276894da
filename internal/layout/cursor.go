package layout

// Cursor is a drawing position passed through the page drawing routines
// by value; every move returns a new cursor.
type Cursor struct {
	X float64
	Y float64
}

// At returns a cursor at x, y.
func At(x, y float64) Cursor { return Cursor{X: x, Y: y} }

// Right moves the cursor dx to the right.
func (c Cursor) Right(dx float64) Cursor { return Cursor{X: c.X + dx, Y: c.Y} }

// Down moves the cursor dy down, keeping x.
func (c Cursor) Down(dy float64) Cursor { return Cursor{X: c.X, Y: c.Y + dy} }

// NextRow returns to left and moves rows table rows down.
func (c Cursor) NextRow(left float64, rows int) Cursor {
	return Cursor{X: left, Y: c.Y + float64(rows)*RowHeight}
}
