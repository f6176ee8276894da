package api

// Options represents configuration options for the DANFE converter
type Options struct {
	// Layout is the tax regime of portrait products tables:
	// ICMS, ICMS_ST or ICMS_IPI
	Layout string
	// ReceiptPosition is "top" or "bottom"
	ReceiptPosition ReceiptPosition

	// LogoPath is a file, URL, data URL or bare base64 image
	LogoPath string

	// Emitter is printed in the header of correction letters
	Emitter *Emitter

	// Rendering options
	Debug bool
	// MaxConcurrency bounds ConvertDir workers
	MaxConcurrency int

	// Document metadata
	Title   string
	Author  string
	Subject string
	Creator string
}

// Emitter identifies the issuer on a DACCe
type Emitter struct {
	Name     string
	Address  string
	District string
	City     string
	State    string
	Phone    string
}

// Option is a function that modifies Options
type Option func(*Options)

// ReceiptPosition places the delivery receipt on portrait pages
type ReceiptPosition string

const (
	// ReceiptTop prints the receipt above the issuer block
	ReceiptTop ReceiptPosition = "top"
	// ReceiptBottom prints it at the foot of the first page
	ReceiptBottom ReceiptPosition = "bottom"
)

// Tax regimes accepted by WithLayout
const (
	LayoutICMS    = "ICMS"
	LayoutICMSST  = "ICMS_ST"
	LayoutICMSIPI = "ICMS_IPI"
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Layout:          LayoutICMSIPI,
		ReceiptPosition: ReceiptTop,
		MaxConcurrency:  4,
		Creator:         "danfe",
	}
}

// WithLayout sets the tax regime of the products table
func WithLayout(layout string) Option {
	return func(o *Options) {
		o.Layout = layout
	}
}

// WithReceiptPosition sets where the receipt is printed
func WithReceiptPosition(position ReceiptPosition) Option {
	return func(o *Options) {
		o.ReceiptPosition = position
	}
}

// WithLogo sets the logo reference
func WithLogo(path string) Option {
	return func(o *Options) {
		o.LogoPath = path
	}
}

// WithEmitter sets the correction letter issuer block
func WithEmitter(e Emitter) Option {
	return func(o *Options) {
		o.Emitter = &e
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithMaxConcurrency sets the number of documents rendered at once
func WithMaxConcurrency(n int) Option {
	return func(o *Options) {
		o.MaxConcurrency = n
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithCreator sets the document creator
func WithCreator(creator string) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}
