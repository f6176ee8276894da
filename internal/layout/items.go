package layout

import "github.com/gompdf/danfe/internal/parser/nfe"

// LineItem is an invoice item with its description already wrapped
type LineItem struct {
	Item  nfe.Item
	Lines []string
}

// Rows returns how many table rows the item occupies; never less than one.
func (li LineItem) Rows() int {
	if len(li.Lines) == 0 {
		return 1
	}
	return len(li.Lines)
}

// BuildItems wraps each item's description, followed by its infAdProd note
// when present, against the description column width.
func BuildItems(items []nfe.Item, m Measurer, width float64) []LineItem {
	out := make([]LineItem, len(items))
	for i, it := range items {
		lines := splitOrBlank(m, it.Description(), width)
		if it.HasAdditionalInfo {
			lines = append(lines, splitOrBlank(m, it.AdditionalInfo, width)...)
		}
		out[i] = LineItem{Item: it, Lines: lines}
	}
	return out
}

// splitOrBlank keeps an empty text as one blank line so it still takes a row
func splitOrBlank(m Measurer, s string, width float64) []string {
	lines := m.SplitLines(s, width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// Rows returns the row count of every item, in order.
func Rows(items []LineItem) []int {
	rows := make([]int, len(items))
	for i, li := range items {
		rows[i] = li.Rows()
	}
	return rows
}
