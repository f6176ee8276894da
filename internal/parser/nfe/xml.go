package nfe

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Namespace is the XML namespace of NF-e documents and events
const Namespace = "http://www.portalfiscal.inf.br/nfe"

// NodeType distinguishes the synthetic document node from elements
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
)

// Node represents an element in the document tree
type Node struct {
	Type        NodeType
	Name        xml.Name
	Attr        []xml.Attr
	Data        string
	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// Document represents a parsed XML document
type Document struct {
	Root *Node
}

// Parser represents an NF-e XML parser
type Parser struct {
	// Strict is passed to the underlying xml.Decoder
	Strict bool
}

// NewParser creates a new XML parser
func NewParser() *Parser {
	return &Parser{Strict: true}
}

// ParseString parses XML from a string
func (p *Parser) ParseString(content string) (*Document, error) {
	return p.Parse(strings.NewReader(content))
}

// ParseBytes parses XML from a byte slice
func (p *Parser) ParseBytes(content []byte) (*Document, error) {
	return p.Parse(bytes.NewReader(content))
}

// Parse parses XML from an io.Reader. Documents declared in a legacy
// charset (ISO-8859-1 is common for NF-e) are transcoded on the fly.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = p.Strict
	dec.CharsetReader = charset.NewReaderLabel

	doc := &Node{Type: DocumentNode}
	cur := doc
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			cur = cur.appendChild(&Node{
				Type: ElementNode,
				Name: t.Name,
				Attr: t.Copy().Attr,
			})
		case xml.EndElement:
			if cur.Parent == nil {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrMalformedDocument, t.Name.Local)
			}
			cur = cur.Parent
		case xml.CharData:
			if cur.Type == ElementNode {
				cur.Data += string(t)
			}
		}
	}

	if cur != doc {
		return nil, fmt.Errorf("%w: unclosed <%s>", ErrMalformedDocument, cur.Name.Local)
	}
	if doc.FirstChild == nil {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}
	return &Document{Root: doc}, nil
}

// appendChild links child as the last child of n and returns it
func (n *Node) appendChild(child *Node) *Node {
	child.Parent = n
	if n.LastChild != nil {
		n.LastChild.NextSibling = child
		child.PrevSibling = n.LastChild
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
	return child
}

// Is reports whether n is an element with the given local name in the NF-e
// namespace. Unqualified elements are accepted as well.
func (n *Node) Is(tag string) bool {
	if n == nil || n.Type != ElementNode || n.Name.Local != tag {
		return false
	}
	return n.Name.Space == Namespace || n.Name.Space == ""
}

// Find returns the first descendant named tag in document order, or nil.
// It is safe to call on a nil node.
func (n *Node) Find(tag string) *Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Is(tag) {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant named tag in document order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Is(tag) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

// FindWhere returns the first descendant named tag whose attribute attr equals value.
func (n *Node) FindWhere(tag, attr, value string) *Node {
	for _, c := range n.FindAll(tag) {
		if c.Attribute(attr) == value {
			return c
		}
	}
	return nil
}

// Children returns the element children of n named tag.
func (n *Node) Children(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Is(tag) {
			out = append(out, c)
		}
	}
	return out
}

// Text returns the character data of the first descendant named tag.
// Missing elements yield an empty string.
func (n *Node) Text(tag string) string {
	return n.Find(tag).Content()
}

// Content returns the character data held directly by n.
func (n *Node) Content() string {
	if n == nil {
		return ""
	}
	return n.Data
}

// Attribute returns the value of the named attribute or "".
func (n *Node) Attribute(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Find looks up tag from the document root.
func (d *Document) Find(tag string) *Node {
	if d == nil {
		return nil
	}
	return d.Root.Find(tag)
}
