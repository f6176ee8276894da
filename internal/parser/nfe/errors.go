package nfe

import "errors"

var (
	// ErrMalformedDocument is returned when the input is not well formed XML
	// or lacks the root group of the expected document kind.
	ErrMalformedDocument = errors.New("nfe: malformed source document")
	// ErrMissingField is returned when a mandatory identity field is absent.
	ErrMissingField = errors.New("nfe: missing mandatory field")
)
