package nfe

import (
	"fmt"
	"io"
	"strings"
)

// Event gives typed access to a correction letter (CC-e) event, usually a
// procEventoNFe holding the signed evento and its retEvento.
type Event struct {
	Doc    *Document
	Info   *Node
	Detail *Node
	Result *Node
}

// ParseEvent reads a CC-e event document.
func ParseEvent(r io.Reader) (*Event, error) {
	doc, err := NewParser().Parse(r)
	if err != nil {
		return nil, err
	}
	return NewEvent(doc)
}

// ParseEventString reads a CC-e event document held in a string.
func ParseEventString(content string) (*Event, error) {
	return ParseEvent(strings.NewReader(content))
}

// NewEvent wraps an already parsed document.
func NewEvent(doc *Document) (*Event, error) {
	info := doc.Find("infEvento")
	if info == nil {
		return nil, fmt.Errorf("%w: infEvento not found", ErrMalformedDocument)
	}
	ev := &Event{
		Doc:    doc,
		Info:   info,
		Detail: doc.Find("detEvento"),
		Result: doc.Find("retEvento").Find("infEvento"),
	}
	if ev.Key() == "" {
		return nil, fmt.Errorf("%w: infEvento/chNFe", ErrMissingField)
	}
	return ev, nil
}

// ID returns the event Id without its "ID" prefix.
func (ev *Event) ID() string {
	id := ev.Info.Attribute("Id")
	if len(id) <= 2 {
		return ""
	}
	return id[2:]
}

// Key returns the access key of the corrected invoice.
func (ev *Event) Key() string { return ev.Info.Text("chNFe") }

// Created returns infEvento/dhEvento.
func (ev *Event) Created() string { return ev.Info.Text("dhEvento") }

// Conditions returns the legal text of detEvento/xCondUso.
func (ev *Event) Conditions() string { return ev.Detail.Text("xCondUso") }

// Correction returns detEvento/xCorrecao.
func (ev *Event) Correction() string { return ev.Detail.Text("xCorrecao") }

// Protocol returns the registration protocol number.
func (ev *Event) Protocol() string { return ev.Result.Text("nProt") }

// Registered returns the registration timestamp.
func (ev *Event) Registered() string { return ev.Result.Text("dhRegEvento") }

// RecipientCNPJ returns retEvento/infEvento/CNPJDest.
func (ev *Event) RecipientCNPJ() string { return ev.Result.Text("CNPJDest") }

// InvoiceNumber returns the nNF digits embedded in the access key.
func (ev *Event) InvoiceNumber() string { return keySlice(ev.Key(), 25, 34) }

// InvoiceSeries returns the series digits embedded in the access key.
func (ev *Event) InvoiceSeries() string { return keySlice(ev.Key(), 22, 25) }

func keySlice(key string, from, to int) string {
	if len(key) < to {
		return ""
	}
	return key[from:to]
}
