package pdf

import (
	"fmt"
	"image/color"

	"github.com/boombuler/barcode/code128"
)

// BarThickness is the width of one Code 128 module, in millimeters
const BarThickness = 0.265

// barcode draws content as a Code 128 barcode whose top left corner is at
// x, y. Adjacent dark modules are merged into a single bar. The quiet zone
// is left to the surrounding box margin. Encoding failures are recorded in
// the document error state.
func (c *canvas) barcode(content string, x, y, height float64) {
	bc, err := code128.Encode(content)
	if err != nil {
		c.pdf.SetError(fmt.Errorf("encode barcode: %w", err))
		return
	}

	c.pdf.SetFillColor(0, 0, 0)
	modules := bc.Bounds().Dx()
	for i := 0; i < modules; {
		if !isDark(bc.At(i, 0)) {
			i++
			continue
		}
		start := i
		for i < modules && isDark(bc.At(i, 0)) {
			i++
		}
		c.pdf.Rect(x+float64(start)*BarThickness, y, float64(i-start)*BarThickness, height, "F")
	}
}

// BarcodeWidth returns the printed width of content's Code 128 symbol.
func BarcodeWidth(content string) (float64, error) {
	bc, err := code128.Encode(content)
	if err != nil {
		return 0, err
	}
	return float64(bc.Bounds().Dx()) * BarThickness, nil
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}
