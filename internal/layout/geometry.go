package layout

// Orientation of a DANFE, in fpdf notation
type Orientation string

const (
	OrientationPortrait  Orientation = "P"
	OrientationLandscape Orientation = "L"
)

// OrientationFor maps ide/tpImp to a page orientation: "1" is portrait,
// anything else prints landscape.
func OrientationFor(tpImp string) Orientation {
	if tpImp == "1" {
		return OrientationPortrait
	}
	return OrientationLandscape
}

// ReceiptPosition places the delivery receipt stub on portrait pages
type ReceiptPosition string

const (
	ReceiptTop    ReceiptPosition = "top"
	ReceiptBottom ReceiptPosition = "bottom"
)

// Row capacities of the products table
const (
	PortraitFirstCapacity         = 23
	PortraitContinuationCapacity  = 70
	LandscapeFirstCapacity        = 6
	LandscapeContinuationCapacity = 45
)

// RowHeight is the height of one products table row
const RowHeight = DescriptionLineHeight

// Geometry holds the fixed vertical offsets and capacities of a layout
type Geometry struct {
	Orientation          Orientation
	Receipt              ReceiptPosition
	FirstCapacity        int
	ContinuationCapacity int

	// Left edge and width of the framed area
	Left  float64
	Width float64

	// Top of the issuer box and of the products table on the first page
	EmitY     float64
	ProductsY float64

	// Same offsets on continuation pages
	ContinuationEmitY     float64
	ContinuationProductsY float64

	// Additional information box (portrait only; landscape is fixed)
	AdditionalY      float64
	AdditionalHeight float64
}

// NewGeometry returns the layout geometry of an orientation and receipt position.
func NewGeometry(o Orientation, receipt ReceiptPosition) Geometry {
	if receipt != ReceiptBottom {
		receipt = ReceiptTop
	}

	if o == OrientationLandscape {
		return Geometry{
			Orientation:           o,
			Receipt:               receipt,
			FirstCapacity:         LandscapeFirstCapacity,
			ContinuationCapacity:  LandscapeContinuationCapacity,
			Left:                  36,
			Width:                 248,
			EmitY:                 10,
			ProductsY:             134,
			ContinuationEmitY:     11,
			ContinuationProductsY: 11 + 42,
			AdditionalY:           167,
			AdditionalHeight:      29,
		}
	}

	g := Geometry{
		Orientation:           OrientationPortrait,
		Receipt:               receipt,
		FirstCapacity:         PortraitFirstCapacity,
		ContinuationCapacity:  PortraitContinuationCapacity,
		Left:                  10,
		Width:                 190,
		EmitY:                 31,
		ProductsY:             161,
		ContinuationEmitY:     11,
		ContinuationProductsY: 11 + 49,
		AdditionalHeight:      29,
	}
	if receipt == ReceiptBottom {
		g.EmitY = 10
		g.ProductsY = 140
	}
	g.AdditionalY = g.EmitY + 209.5
	return g
}

// Offsets returns the issuer and products table tops of page n (1 based).
func (g Geometry) Offsets(page int) (emitY, productsY float64) {
	if page <= 1 {
		return g.EmitY, g.ProductsY
	}
	return g.ContinuationEmitY, g.ContinuationProductsY
}

// TableHeight returns the framed height of a products table holding rows rows.
func TableHeight(rows int) float64 {
	return float64(rows)*RowHeight + 6.5
}
