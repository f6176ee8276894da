package layout

import (
	"strings"
	"testing"

	"github.com/gompdf/danfe/internal/parser/nfe"
	"github.com/gompdf/danfe/internal/parser/nfe/nfetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeMeasurer splits on "|" so tests control the line count exactly
type pipeMeasurer struct{}

func (pipeMeasurer) SplitLines(s string, _ float64) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}

func TestColumnsFor(t *testing.T) {
	tests := []struct {
		regime    TaxRegime
		count     int
		width     float64
		descWidth float64
		last      string
	}{
		{RegimeICMS, 12, 190, 72, "ALÍQ\nICMS"},
		{RegimeICMSST, 14, 190, 48, "ALÍQ\nICMS"},
		{RegimeICMSIPI, 14, 190, 54, "ALÍQ\nIPI"},
		{RegimeICMSSTIPI, 16, 248, 72, "ALÍQ\nIPI"},
	}

	for _, tt := range tests {
		t.Run(tt.regime.String(), func(t *testing.T) {
			cols := ColumnsFor(tt.regime)
			assert.Equal(t, tt.regime, cols.Regime)
			require.Len(t, cols.Columns, tt.count)
			assert.InDelta(t, tt.width, cols.Width(), 1e-9)
			assert.Equal(t, tt.descWidth, cols.DescriptionWidth())
			assert.Equal(t, "CÓDIGO", cols.Columns[0].Header)
			assert.True(t, cols.Columns[1].IsDescription())
			assert.Equal(t, tt.last, cols.Columns[tt.count-1].Header)
			for i, col := range cols.Columns {
				if i != 1 {
					assert.NotNil(t, col.Value, "column %s", col.Header)
				}
			}
		})
	}
}

func TestColumnsForPage(t *testing.T) {
	assert.Equal(t, RegimeICMSSTIPI, ColumnsForPage(OrientationLandscape, RegimeICMS).Regime)
	assert.Equal(t, RegimeICMSST, ColumnsForPage(OrientationPortrait, RegimeICMSST).Regime)
	assert.Equal(t, RegimeICMS, ColumnsFor(TaxRegime(42)).Regime)
}

func TestParseTaxRegime(t *testing.T) {
	r, err := ParseTaxRegime("icms_ipi")
	require.NoError(t, err)
	assert.Equal(t, RegimeICMSIPI, r)

	r, err = ParseTaxRegime("ICMS_ST")
	require.NoError(t, err)
	assert.Equal(t, RegimeICMSST, r)

	_, err = ParseTaxRegime("ISS")
	assert.Error(t, err)
	assert.Equal(t, "TaxRegime(9)", TaxRegime(9).String())
}

func TestCellValues(t *testing.T) {
	inv, err := nfe.ParseInvoiceString(nfetest.Invoice{Items: nfetest.Items(1)}.XML())
	require.NoError(t, err)
	it := inv.Items[0]

	var got []string
	for _, col := range ColumnsFor(RegimeICMSIPI).Columns {
		if col.IsDescription() {
			got = append(got, "")
			continue
		}
		got = append(got, col.Value(it))
	}
	assert.Equal(t, []string{
		"001", "", "84713012", "000", "5102", "UN", "2,0000", "1.500,50", "3.001,00", "3.001,00",
		"540,18", "150,05", "18,00", "5,00",
	}, got)

	st := ColumnsFor(RegimeICMSST).Columns
	assert.Equal(t, "", st[10].Value(it), "missing vBCST prints empty")
}

func TestBuildItems(t *testing.T) {
	items := []nfe.Item{
		{Prod: prodNode(t, "one")},
		{Prod: prodNode(t, "a|b|c")},
		{Prod: prodNode(t, "x"), AdditionalInfo: "note|more", HasAdditionalInfo: true},
		{Prod: prodNode(t, "")},
		{Prod: prodNode(t, "y"), HasAdditionalInfo: true},
	}

	built := BuildItems(items, pipeMeasurer{}, 54)
	require.Len(t, built, 5)
	assert.Equal(t, []string{"one"}, built[0].Lines)
	assert.Equal(t, []string{"a", "b", "c"}, built[1].Lines)
	assert.Equal(t, []string{"x", "note", "more"}, built[2].Lines)
	assert.Equal(t, []string{""}, built[3].Lines)
	assert.Equal(t, []string{"y", ""}, built[4].Lines)
	assert.Equal(t, []int{1, 3, 3, 1, 2}, Rows(built))

	assert.Equal(t, 1, LineItem{}.Rows())
}

func prodNode(t *testing.T, desc string) *nfe.Node {
	t.Helper()
	doc, err := nfe.NewParser().ParseString("<prod><xProd>" + desc + "</xProd></prod>")
	require.NoError(t, err)
	return doc.Find("prod")
}

func TestFontMeasurer(t *testing.T) {
	m := DescriptionMeasurer()
	assert.Same(t, m, DescriptionMeasurer())

	assert.Equal(t, []string{"CANETA AZUL"}, m.SplitLines("CANETA AZUL", 54))
	assert.Empty(t, m.SplitLines("", 54))
	assert.Equal(t, []string{"PRIMEIRA", "SEGUNDA"}, m.SplitLines("PRIMEIRA\nSEGUNDA", 54))
	assert.Equal(t, []string{"Açúcar refinado"}, m.SplitLines("Açúcar refinado", 54))

	long := strings.Repeat("PARAFUSO SEXTAVADO ", 20)
	narrow := m.SplitLines(long, 48)
	wide := m.SplitLines(long, 72)
	assert.Greater(t, len(narrow), 1)
	assert.GreaterOrEqual(t, len(narrow), len(wide))
	assert.Equal(t, strings.Fields(long), strings.Fields(strings.Join(narrow, " ")))
	for _, line := range narrow {
		assert.LessOrEqual(t, m.StringWidth(line), 48.0)
	}
}

func TestGeometry(t *testing.T) {
	top := NewGeometry(OrientationPortrait, ReceiptTop)
	assert.Equal(t, 23, top.FirstCapacity)
	assert.Equal(t, 70, top.ContinuationCapacity)
	assert.Equal(t, 31.0, top.EmitY)
	assert.Equal(t, 161.0, top.ProductsY)
	assert.Equal(t, 240.5, top.AdditionalY)

	bottom := NewGeometry(OrientationPortrait, ReceiptBottom)
	assert.Equal(t, 10.0, bottom.EmitY)
	assert.Equal(t, 140.0, bottom.ProductsY)
	assert.Equal(t, 219.5, bottom.AdditionalY)
	assert.Equal(t, 23, bottom.FirstCapacity)

	emitY, prodY := bottom.Offsets(2)
	assert.Equal(t, 11.0, emitY)
	assert.Equal(t, 60.0, prodY)

	land := NewGeometry(OrientationLandscape, ReceiptBottom)
	assert.Equal(t, 6, land.FirstCapacity)
	assert.Equal(t, 45, land.ContinuationCapacity)
	emitY, prodY = land.Offsets(1)
	assert.Equal(t, 10.0, emitY)
	assert.Equal(t, 134.0, prodY)
	emitY, prodY = land.Offsets(3)
	assert.Equal(t, 11.0, emitY)
	assert.Equal(t, 53.0, prodY)

	assert.Equal(t, ReceiptTop, NewGeometry(OrientationPortrait, "").Receipt)
	assert.Equal(t, OrientationPortrait, OrientationFor("1"))
	assert.Equal(t, OrientationLandscape, OrientationFor("2"))
	assert.Equal(t, OrientationLandscape, OrientationFor(""))
	assert.Equal(t, 75.5, TableHeight(23))
	assert.Equal(t, 6.5, TableHeight(0))
}

func TestCursor(t *testing.T) {
	c := At(10, 167.5)
	assert.Equal(t, Cursor{X: 21, Y: 167.5}, c.Right(11))
	assert.Equal(t, Cursor{X: 10, Y: 170.5}, c.Down(3))
	assert.Equal(t, Cursor{X: 10, Y: 176.5}, c.Right(40).NextRow(10, 3))
	assert.Equal(t, Cursor{X: 10, Y: 167.5}, c, "moves never mutate")
}
