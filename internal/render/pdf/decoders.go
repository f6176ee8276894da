package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Logos may come in any of these formats; image.Decode picks the
	// decoder through their init registration.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"codeberg.org/go-pdf/fpdf"
)

// logoName is the key the logo is registered under in each document
const logoName = "logo"

// registerLogo adds the logo image to pdf. JPEG and PNG are embedded as
// they are; other formats are decoded and re-encoded as PNG.
func registerLogo(pdf *fpdf.Fpdf, data []byte) error {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}

	imageType := ""
	switch format {
	case "jpeg":
		imageType = "JPG"
	case "png":
		imageType = "PNG"
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode %s logo: %w", format, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("re-encode %s logo: %w", format, err)
		}
		data, imageType = buf.Bytes(), "PNG"
	}

	pdf.RegisterImageOptionsReader(logoName, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	return pdf.Error()
}

// drawLogo places the registered logo at x, y scaled to width w
func (c *canvas) drawLogo(x, y, w float64) {
	c.pdf.ImageOptions(logoName, x, y, w, 0, false, fpdf.ImageOptions{}, 0, "")
}
