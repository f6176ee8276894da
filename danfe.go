// Package danfe renders the printable representation (DANFE) of Brazilian
// NF-e invoices and of their correction letters (DACCe).
package danfe

import (
	"github.com/gompdf/danfe/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option
type Emitter = api.Emitter
type Result = api.Result
type ReceiptPosition = api.ReceiptPosition

func New() *Converter                           { return api.New() }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithLayout          = api.WithLayout
	WithReceiptPosition = api.WithReceiptPosition
	WithLogo            = api.WithLogo
	WithEmitter         = api.WithEmitter
	WithDebug           = api.WithDebug
	WithMaxConcurrency  = api.WithMaxConcurrency
	WithTitle           = api.WithTitle
	WithAuthor          = api.WithAuthor
	WithSubject         = api.WithSubject
	WithCreator         = api.WithCreator
)

const (
	LayoutICMS    = api.LayoutICMS
	LayoutICMSST  = api.LayoutICMSST
	LayoutICMSIPI = api.LayoutICMSIPI

	ReceiptTop    = api.ReceiptTop
	ReceiptBottom = api.ReceiptBottom
)
