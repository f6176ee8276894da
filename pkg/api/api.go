package api

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gompdf/danfe/internal/batch"
	"github.com/gompdf/danfe/internal/config"
	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/logger"
	"github.com/gompdf/danfe/internal/parser/nfe"
	"github.com/gompdf/danfe/internal/render/pdf"
	"github.com/gompdf/danfe/internal/res"
)

// Converter is the main API for turning NF-e and CC-e XML into PDF
type Converter struct {
	options Options
	loader  *res.Loader
}

// Result reports one file of a ConvertDir run
type Result struct {
	Path   string
	Output string
	Pages  int
	Err    error
}

// New creates a converter with default options
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a converter with the specified options
func NewWithOptions(options Options) *Converter {
	return &Converter{
		options: options,
		loader:  res.NewLoader(""),
	}
}

// Options returns a copy of the converter options
func (c *Converter) Options() Options {
	return c.options
}

// Convert renders one NF-e and writes the PDF to output
func (c *Converter) Convert(xml string, output io.Writer) error {
	return c.ConvertMany([][]byte{[]byte(xml)}, output)
}

// ConvertBytes renders NF-e bytes to PDF bytes
func (c *Converter) ConvertBytes(xml []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.ConvertMany([][]byte{xml}, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToFile renders one NF-e into outputPath
func (c *Converter) ConvertToFile(xml, outputPath string) error {
	inv, err := nfe.ParseInvoiceString(xml)
	if err != nil {
		return fmt.Errorf("failed to parse NF-e: %w", err)
	}

	r, err := c.renderer(context.Background())
	if err != nil {
		return err
	}
	summary, err := r.RenderToFile([]*nfe.Invoice{inv}, outputPath, c.renderOptions())
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	logger.Debug("converted", "key", inv.Key(), "output", outputPath, "pages", summary.Pages)
	return nil
}

// ConvertFile renders the NF-e at inputPath, a local path or URL, into outputPath
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	src, err := c.loader.LoadXML(context.Background(), inputPath)
	if err != nil {
		return fmt.Errorf("failed to load NF-e: %w", err)
	}
	return c.ConvertToFile(string(src.Data), outputPath)
}

// ConvertMany renders several NF-e into a single PDF. Each document keeps
// its own page numbering.
func (c *Converter) ConvertMany(docs [][]byte, output io.Writer) error {
	invoices := make([]*nfe.Invoice, 0, len(docs))
	for i, doc := range docs {
		inv, err := nfe.ParseInvoice(bytes.NewReader(doc))
		if err != nil {
			return fmt.Errorf("failed to parse NF-e %d: %w", i, err)
		}
		invoices = append(invoices, inv)
	}

	r, err := c.renderer(context.Background())
	if err != nil {
		return err
	}
	summary, err := r.Render(invoices, output, c.renderOptions())
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	logger.Debug("converted", "documents", len(invoices), "pages", summary.Pages)
	return nil
}

// ConvertCCe renders a correction letter event and writes the PDF to output
func (c *Converter) ConvertCCe(xml string, output io.Writer) error {
	ev, err := nfe.ParseEventString(xml)
	if err != nil {
		return fmt.Errorf("failed to parse CC-e: %w", err)
	}

	r, err := c.renderer(context.Background())
	if err != nil {
		return err
	}
	if _, err := r.RenderCCe([]*nfe.Event{ev}, output, c.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// ConvertCCeFile renders the CC-e at inputPath into outputPath
func (c *Converter) ConvertCCeFile(inputPath, outputPath string) error {
	src, err := c.loader.LoadXML(context.Background(), inputPath)
	if err != nil {
		return fmt.Errorf("failed to load CC-e: %w", err)
	}
	ev, err := nfe.ParseEvent(src.Reader())
	if err != nil {
		return fmt.Errorf("failed to parse CC-e: %w", err)
	}

	r, err := c.renderer(context.Background())
	if err != nil {
		return err
	}
	if _, err := r.RenderCCeToFile([]*nfe.Event{ev}, outputPath, c.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// ConvertDir renders every *.xml of inputDir into outputDir, one PDF per
// file. cce selects correction letters instead of invoices. Failed files
// are reported in their Result.
func (c *Converter) ConvertDir(ctx context.Context, inputDir, outputDir string, cce bool) ([]Result, error) {
	cfg := &config.Config{
		InputDir:        inputDir,
		OutputDir:       outputDir,
		Kind:            config.KindDANFE,
		Layout:          c.options.Layout,
		ReceiptPosition: string(c.options.ReceiptPosition),
		Logo:            c.options.LogoPath,
		MaxConcurrency:  c.options.MaxConcurrency,
		Title:           c.options.Title,
		Author:          c.options.Author,
		Debug:           c.options.Debug,
	}
	if cce {
		cfg.Kind = config.KindCCe
	}
	if e := c.options.Emitter; e != nil {
		cfg.Emitter = config.Emitter(*e)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runner, err := batch.NewRunner(ctx, cfg)
	if err != nil {
		return nil, err
	}
	runner.Options = c.renderOptions()

	results, err := runner.Run(ctx)
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = Result(r)
	}
	return out, err
}

func (c *Converter) renderer(ctx context.Context) (*pdf.Renderer, error) {
	regime, err := layout.ParseTaxRegime(c.options.Layout)
	if err != nil {
		return nil, err
	}

	r := pdf.NewRenderer()
	r.Regime = regime
	r.Receipt = layout.ReceiptPosition(c.options.ReceiptPosition)
	r.Debug = c.options.Debug
	if e := c.options.Emitter; e != nil {
		em := pdf.Emitter(*e)
		r.Emitter = &em
	}
	if c.options.LogoPath != "" {
		logo, err := c.loader.LoadImage(ctx, c.options.LogoPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load logo: %w", err)
		}
		r.Logo = logo.Data
	}
	return r, nil
}

func (c *Converter) renderOptions() pdf.RenderOptions {
	return pdf.RenderOptions{
		Title:    c.options.Title,
		Author:   c.options.Author,
		Subject:  c.options.Subject,
		Creator:  c.options.Creator,
		Producer: "danfe",
	}
}

// WithOptions returns a new converter with the specified options
func (c *Converter) WithOptions(options Options) *Converter {
	return NewWithOptions(options)
}

// WithOption returns a new converter with the specified option set
func (c *Converter) WithOption(option Option) *Converter {
	newOptions := c.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// SetLayout sets the tax regime of the products table
func (c *Converter) SetLayout(layout string) *Converter {
	return c.WithOption(WithLayout(layout))
}

// SetReceiptPosition sets where the receipt is printed
func (c *Converter) SetReceiptPosition(position ReceiptPosition) *Converter {
	return c.WithOption(WithReceiptPosition(position))
}

// SetLogo sets the logo reference
func (c *Converter) SetLogo(path string) *Converter {
	return c.WithOption(WithLogo(path))
}

// SetEmitter sets the correction letter issuer block
func (c *Converter) SetEmitter(e Emitter) *Converter {
	return c.WithOption(WithEmitter(e))
}

// SetDebug sets the debug mode
func (c *Converter) SetDebug(debug bool) *Converter {
	return c.WithOption(WithDebug(debug))
}

// SetTitle sets the document title
func (c *Converter) SetTitle(title string) *Converter {
	return c.WithOption(WithTitle(title))
}

// SetAuthor sets the document author
func (c *Converter) SetAuthor(author string) *Converter {
	return c.WithOption(WithAuthor(author))
}

// SetSubject sets the document subject
func (c *Converter) SetSubject(subject string) *Converter {
	return c.WithOption(WithSubject(subject))
}
