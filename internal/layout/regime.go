package layout

import (
	"fmt"
	"strings"

	"github.com/gompdf/danfe/internal/format"
	"github.com/gompdf/danfe/internal/parser/nfe"
)

// TaxRegime selects the tax columns of the products table
type TaxRegime int

const (
	// RegimeICMS shows ICMS value and rate
	RegimeICMS TaxRegime = iota
	// RegimeICMSST adds the ICMS ST base and value
	RegimeICMSST
	// RegimeICMSIPI adds IPI value and rate
	RegimeICMSIPI
	// RegimeICMSSTIPI shows both ST and IPI; used by the landscape layout
	RegimeICMSSTIPI
)

var regimeNames = map[TaxRegime]string{
	RegimeICMS:      "ICMS",
	RegimeICMSST:    "ICMS_ST",
	RegimeICMSIPI:   "ICMS_IPI",
	RegimeICMSSTIPI: "ICMS_ST_IPI",
}

func (r TaxRegime) String() string {
	if name, ok := regimeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("TaxRegime(%d)", int(r))
}

// ParseTaxRegime resolves a regime by name, case insensitive.
func ParseTaxRegime(s string) (TaxRegime, error) {
	for r, name := range regimeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown tax regime %q", s)
}

// Alignment of a cell, in fpdf notation
type Alignment string

const (
	AlignLeft   Alignment = "L"
	AlignCenter Alignment = "C"
	AlignRight  Alignment = "R"
)

// CellFunc extracts the printed text of a column for one item
type CellFunc func(nfe.Item) string

// Column is one column of the products table
type Column struct {
	Header string
	Width  float64
	Align  Alignment
	// Value is nil for the description column, which is drawn from the
	// pre-wrapped lines of the LineItem.
	Value CellFunc
}

// IsDescription reports whether the column holds the wrapped description.
func (c Column) IsDescription() bool { return c.Value == nil }

// Columns is the fixed column record of a regime
type Columns struct {
	Regime  TaxRegime
	Columns []Column
}

// DescriptionWidth returns the width the description is wrapped against.
func (c Columns) DescriptionWidth() float64 {
	for _, col := range c.Columns {
		if col.IsDescription() {
			return col.Width
		}
	}
	return 0
}

// Width returns the total width of the table.
func (c Columns) Width() float64 {
	total := 0.0
	for _, col := range c.Columns {
		total += col.Width
	}
	return total
}

func prod(tag string) CellFunc {
	return func(it nfe.Item) string { return it.Prod.Text(tag) }
}

func prodNumber(tag string, precision int) CellFunc {
	return func(it nfe.Item) string { return format.Number(it.Prod.Text(tag), precision) }
}

func icms(tag string) CellFunc {
	return func(it nfe.Item) string { return format.Number(it.ICMS.Text(tag), 2) }
}

func ipi(tag string) CellFunc {
	return func(it nfe.Item) string { return format.Number(it.IPI.Text(tag), 2) }
}

func cst(it nfe.Item) string { return it.CST() }

// baseColumns returns the ten leading columns common to every regime
func baseColumns(code, desc, cstWidth, cfopWidth, totalWidth float64) []Column {
	return []Column{
		{Header: "CÓDIGO", Width: code, Align: AlignLeft, Value: prod("cProd")},
		{Header: "DESCRIÇÃO DO PRODUTO/SERVIÇO", Width: desc, Align: AlignLeft},
		{Header: "NCM/SH", Width: 13, Align: AlignCenter, Value: prod("NCM")},
		{Header: "CST", Width: cstWidth, Align: AlignCenter, Value: cst},
		{Header: "CFOP", Width: cfopWidth, Align: AlignCenter, Value: prod("CFOP")},
		{Header: "UNID", Width: 8, Align: AlignCenter, Value: prod("uCom")},
		{Header: "QTD", Width: 13, Align: AlignRight, Value: prodNumber("qCom", 4)},
		{Header: "VLR UNIT", Width: 13, Align: AlignRight, Value: prodNumber("vUnCom", 2)},
		{Header: "VLR TOTAL", Width: totalWidth, Align: AlignRight, Value: prodNumber("vProd", 2)},
		{Header: "BC ICMS", Width: 12, Align: AlignRight, Value: icms("vBC")},
	}
}

// ColumnsFor returns the column record of a regime.
func ColumnsFor(r TaxRegime) Columns {
	var cols []Column
	switch r {
	case RegimeICMSST:
		cols = append(baseColumns(11, 48, 6.5, 6.5, 15),
			Column{Header: "BC ICMS ST", Width: 12, Align: AlignRight, Value: icms("vBCST")},
			Column{Header: "VLR ICMS ST", Width: 13, Align: AlignRight, Value: icms("vICMSST")},
			Column{Header: "VLR ICMS", Width: 12, Align: AlignRight, Value: icms("vICMS")},
			Column{Header: "ALÍQ\nICMS", Width: 7, Align: AlignRight, Value: icms("pICMS")},
		)
	case RegimeICMSIPI:
		cols = append(baseColumns(11, 54, 7, 7, 14),
			Column{Header: "VLR. ICMS", Width: 12, Align: AlignRight, Value: icms("vICMS")},
			Column{Header: "VLR. IPI", Width: 12, Align: AlignRight, Value: ipi("vIPI")},
			Column{Header: "ALÍQ\nICMS", Width: 7, Align: AlignRight, Value: icms("pICMS")},
			Column{Header: "ALÍQ\nIPI", Width: 7, Align: AlignRight, Value: ipi("pIPI")},
		)
	case RegimeICMSSTIPI:
		cols = append(baseColumns(22, 72, 7, 7, 14),
			Column{Header: "BC ICMS ST", Width: 12, Align: AlignRight, Value: icms("vBCST")},
			Column{Header: "VLR ICMS ST", Width: 13, Align: AlignRight, Value: icms("vICMSST")},
			Column{Header: "VLR ICMS", Width: 12, Align: AlignRight, Value: icms("vICMS")},
			Column{Header: "VLR. IPI", Width: 12, Align: AlignRight, Value: ipi("vIPI")},
			Column{Header: "ALÍQ\nICMS", Width: 9, Align: AlignRight, Value: icms("pICMS")},
			Column{Header: "ALÍQ\nIPI", Width: 9, Align: AlignRight, Value: ipi("pIPI")},
		)
	default:
		r = RegimeICMS
		cols = append(baseColumns(11, 72, 7, 7, 15),
			Column{Header: "VLR. ICMS", Width: 12, Align: AlignRight, Value: icms("vICMS")},
			Column{Header: "ALÍQ\nICMS", Width: 7, Align: AlignRight, Value: icms("pICMS")},
		)
	}
	return Columns{Regime: r, Columns: cols}
}

// ColumnsForPage returns the columns used by an orientation: portrait pages
// honor the configured regime, landscape pages always show ST and IPI.
func ColumnsForPage(o Orientation, r TaxRegime) Columns {
	if o == OrientationLandscape {
		return ColumnsFor(RegimeICMSSTIPI)
	}
	return ColumnsFor(r)
}
