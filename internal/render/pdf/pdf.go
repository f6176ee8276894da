package pdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/logger"
	"github.com/gompdf/danfe/internal/pagination"
	"github.com/gompdf/danfe/internal/parser/nfe"
)

// ErrNoDocuments is returned when there is nothing to render
var ErrNoDocuments = errors.New("no documents to render")

// RenderError reports a failure while drawing one document
type RenderError struct {
	Op  string
	Key string
	Err error
}

func (e *RenderError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Emitter is the issuer block printed on a correction letter. The CC-e
// event does not carry the issuer address, so it comes from configuration.
type Emitter struct {
	Name     string
	Address  string
	District string
	City     string
	State    string
	Phone    string
}

// Renderer draws DANFE and DACCe documents
type Renderer struct {
	// Debug enables per page diagnostics in the log
	Debug bool
	// Regime selects the tax columns of portrait pages
	Regime layout.TaxRegime
	// Receipt places the delivery receipt on portrait pages
	Receipt layout.ReceiptPosition
	// Logo is the raw emitter logo, any format image.Decode understands
	Logo []byte
	// Emitter is printed on correction letters
	Emitter *Emitter

	measurer layout.Measurer
}

// RenderOptions contains the document metadata
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Summary describes what a render produced
type Summary struct {
	// Plans holds the page plan of each invoice, in input order
	Plans []pagination.Plan
	// Pages is the page count of the whole file
	Pages int
}

// NewRenderer creates a renderer with the default ICMS_IPI layout and
// the receipt on top
func NewRenderer() *Renderer {
	return &Renderer{
		Regime:   layout.RegimeICMSIPI,
		Receipt:  layout.ReceiptTop,
		measurer: layout.DescriptionMeasurer(),
	}
}

// SetMeasurer replaces the description measurer. Pagination is only
// correct when it matches the font the table is drawn with.
func (r *Renderer) SetMeasurer(m layout.Measurer) {
	r.measurer = m
}

// Render draws every invoice, one after another, into a single PDF
// written to w.
func (r *Renderer) Render(docs []*nfe.Invoice, w io.Writer, options RenderOptions) (Summary, error) {
	pdf, summary, err := r.build(docs, options)
	if err != nil {
		return summary, err
	}
	if err := pdf.Output(w); err != nil {
		return summary, &RenderError{Op: "write", Err: err}
	}
	return summary, nil
}

// RenderToFile renders docs into outputPath, creating its directory when needed.
func (r *Renderer) RenderToFile(docs []*nfe.Invoice, outputPath string, options RenderOptions) (Summary, error) {
	pdf, summary, err := r.build(docs, options)
	if err != nil {
		return summary, err
	}
	if err := ensureDir(outputPath); err != nil {
		return summary, err
	}
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return summary, &RenderError{Op: "write", Err: err}
	}
	return summary, nil
}

// RenderCCe draws one correction letter page per event into w.
func (r *Renderer) RenderCCe(events []*nfe.Event, w io.Writer, options RenderOptions) (Summary, error) {
	pdf, summary, err := r.buildCCe(events, options)
	if err != nil {
		return summary, err
	}
	if err := pdf.Output(w); err != nil {
		return summary, &RenderError{Op: "write", Err: err}
	}
	return summary, nil
}

// RenderCCeToFile is RenderCCe writing into outputPath.
func (r *Renderer) RenderCCeToFile(events []*nfe.Event, outputPath string, options RenderOptions) (Summary, error) {
	pdf, summary, err := r.buildCCe(events, options)
	if err != nil {
		return summary, err
	}
	if err := ensureDir(outputPath); err != nil {
		return summary, err
	}
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return summary, &RenderError{Op: "write", Err: err}
	}
	return summary, nil
}

func (r *Renderer) build(docs []*nfe.Invoice, options RenderOptions) (*fpdf.Fpdf, Summary, error) {
	var summary Summary
	if len(docs) == 0 {
		return nil, summary, ErrNoDocuments
	}

	pdf, err := r.newDocument(defaultTitle(options, "DANFE"), options)
	if err != nil {
		return nil, summary, err
	}

	c := &canvas{pdf: pdf}
	for _, inv := range docs {
		s := r.newSession(inv)
		logger.Debug("rendering danfe", "session", s.id, "key", s.key, "orientation", string(s.geo.Orientation), "pages", s.pages())
		s.draw(c)
		if err := pdf.Error(); err != nil {
			return nil, summary, &RenderError{Op: "draw", Key: s.key, Err: err}
		}
		summary.Plans = append(summary.Plans, s.plan)
	}

	summary.Pages = pdf.PageCount()
	return pdf, summary, nil
}

func (r *Renderer) buildCCe(events []*nfe.Event, options RenderOptions) (*fpdf.Fpdf, Summary, error) {
	var summary Summary
	if len(events) == 0 {
		return nil, summary, ErrNoDocuments
	}

	pdf, err := r.newDocument(defaultTitle(options, "DACCe"), options)
	if err != nil {
		return nil, summary, err
	}

	c := &canvas{pdf: pdf}
	for _, ev := range events {
		logger.Debug("rendering dacce", "key", ev.Key(), "event", ev.ID())
		r.drawCCe(c, ev)
		if err := pdf.Error(); err != nil {
			return nil, summary, &RenderError{Op: "draw cce", Key: ev.Key(), Err: err}
		}
	}

	summary.Pages = pdf.PageCount()
	return pdf, summary, nil
}

// newDocument creates an A4 millimeter document with automatic page
// breaks off; every page is laid out by hand.
func (r *Renderer) newDocument(title string, options RenderOptions) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 10)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)

	if len(r.Logo) > 0 {
		if err := registerLogo(pdf, r.Logo); err != nil {
			return nil, &RenderError{Op: "logo", Err: err}
		}
	}
	return pdf, nil
}

func (r *Renderer) hasLogo() bool { return len(r.Logo) > 0 }

func defaultTitle(options RenderOptions, fallback string) string {
	if options.Title != "" {
		return options.Title
	}
	return fallback
}

func ensureDir(outputPath string) error {
	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}
