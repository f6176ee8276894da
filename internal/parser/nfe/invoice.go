package nfe

import (
	"fmt"
	"io"
	"strings"
)

// MaxDuplicates is how many installments fit the billing box
const MaxDuplicates = 9

// Environment values of ide/tpAmb
const (
	EnvironmentProduction   = "1"
	EnvironmentHomologation = "2"
)

// Invoice gives typed access to the groups of an authorized NF-e
// (nfeProc, or a bare NFe element).
type Invoice struct {
	Doc      *Document
	InfNFe   *Node
	Protocol *Node
	Ide      *Node
	Emit     *Node
	Dest     *Node
	Total    *Node
	Transp   *Node
	Cobr     *Node
	InfAdic  *Node
	Items    []Item
}

// Item is one det group of the invoice
type Item struct {
	Index int
	Node  *Node
	Prod  *Node
	Tax   *Node
	ICMS  *Node
	IPI   *Node
	// AdditionalInfo is the infAdProd text; HasAdditionalInfo is false when
	// the element is absent.
	AdditionalInfo    string
	HasAdditionalInfo bool
}

// Duplicate is one installment of the cobr group
type Duplicate struct {
	Number string
	Due    string
	Value  string
}

// ParseInvoice reads an NF-e document.
func ParseInvoice(r io.Reader) (*Invoice, error) {
	doc, err := NewParser().Parse(r)
	if err != nil {
		return nil, err
	}
	return NewInvoice(doc)
}

// ParseInvoiceString reads an NF-e document held in a string.
func ParseInvoiceString(content string) (*Invoice, error) {
	return ParseInvoice(strings.NewReader(content))
}

// NewInvoice wraps an already parsed document.
func NewInvoice(doc *Document) (*Invoice, error) {
	inf := doc.Find("infNFe")
	if inf == nil {
		return nil, fmt.Errorf("%w: infNFe not found", ErrMalformedDocument)
	}

	inv := &Invoice{
		Doc:      doc,
		InfNFe:   inf,
		Protocol: doc.Find("protNFe"),
		Ide:      inf.Find("ide"),
		Emit:     inf.Find("emit"),
		Dest:     inf.Find("dest"),
		Total:    inf.Find("total"),
		Transp:   inf.Find("transp"),
		Cobr:     inf.Find("cobr"),
		InfAdic:  inf.Find("infAdic"),
	}

	if len(inv.Key()) == 0 {
		return nil, fmt.Errorf("%w: infNFe/@Id", ErrMissingField)
	}
	if strings.TrimSpace(inv.Ide.Text("nNF")) == "" {
		return nil, fmt.Errorf("%w: ide/nNF", ErrMissingField)
	}

	for i, det := range inf.FindAll("det") {
		tax := det.Find("imposto")
		add := det.Find("infAdProd")
		inv.Items = append(inv.Items, Item{
			Index:             i,
			Node:              det,
			Prod:              det.Find("prod"),
			Tax:               tax,
			ICMS:              tax.Find("ICMS"),
			IPI:               tax.Find("IPI"),
			AdditionalInfo:    add.Content(),
			HasAdditionalInfo: add != nil,
		})
	}

	return inv, nil
}

// Key returns the 44 digit access key, the Id attribute without its "NFe" prefix.
func (inv *Invoice) Key() string {
	id := inv.InfNFe.Attribute("Id")
	if len(id) <= 3 {
		return ""
	}
	return id[3:]
}

// Number returns ide/nNF.
func (inv *Invoice) Number() string { return inv.Ide.Text("nNF") }

// Series returns ide/serie.
func (inv *Invoice) Series() string { return inv.Ide.Text("serie") }

// Direction returns ide/tpNF: 0 for inbound, 1 for outbound.
func (inv *Invoice) Direction() string { return inv.Ide.Text("tpNF") }

// PrintType returns ide/tpImp; "1" selects the portrait layout.
func (inv *Invoice) PrintType() string { return inv.Ide.Text("tpImp") }

// IsHomologation reports whether the invoice was issued in the test environment.
func (inv *Invoice) IsHomologation() bool {
	return inv.Ide.Text("tpAmb") == EnvironmentHomologation
}

// Duplicates returns up to MaxDuplicates installments in document order.
func (inv *Invoice) Duplicates() []Duplicate {
	var out []Duplicate
	for _, dup := range inv.Cobr.FindAll("dup") {
		if len(out) == MaxDuplicates {
			break
		}
		out = append(out, Duplicate{
			Number: dup.Text("nDup"),
			Due:    dup.Text("dVenc"),
			Value:  dup.Text("vDup"),
		})
	}
	return out
}

// Observation returns the xTexto of the infAdic/obsCont whose xCampo is field.
func (inv *Invoice) Observation(field string) string {
	return inv.InfAdic.FindWhere("obsCont", "xCampo", field).Text("xTexto")
}

// Recipient returns the CNPJ of the recipient, falling back to the CPF.
func (inv *Invoice) Recipient() string {
	if doc := inv.Dest.Text("CNPJ"); doc != "" {
		return doc
	}
	return inv.Dest.Text("CPF")
}

// Description returns prod/xProd.
func (it Item) Description() string { return it.Prod.Text("xProd") }

// CST returns the ICMS origin followed by its CST, or CSOSN for Simples Nacional.
func (it Item) CST() string {
	code := it.ICMS.Text("CST")
	if code == "" {
		code = it.ICMS.Text("CSOSN")
	}
	return it.ICMS.Text("orig") + code
}
