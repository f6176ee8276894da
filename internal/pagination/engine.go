package pagination

import (
	"github.com/gompdf/danfe/internal/layout"
)

// Options represents options for the pagination engine
type Options struct {
	FirstPageCapacity    int
	ContinuationCapacity int
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			FirstPageCapacity:    layout.PortraitFirstCapacity,
			ContinuationCapacity: layout.PortraitContinuationCapacity,
		},
	}
}

// OptionsFor returns the capacities of a layout geometry
func OptionsFor(g layout.Geometry) Options {
	return Options{
		FirstPageCapacity:    g.FirstCapacity,
		ContinuationCapacity: g.ContinuationCapacity,
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Options returns the current options
func (e *Engine) Options() Options {
	return e.options
}

// Paginate assigns wrapped line items to pages
func (e *Engine) Paginate(items []layout.LineItem) Plan {
	return Paginate(layout.Rows(items), e.options.FirstPageCapacity, e.options.ContinuationCapacity)
}
