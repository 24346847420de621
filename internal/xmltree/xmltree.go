// Package xmltree builds an ordered, namespace-resolved element tree from raw
// XML bytes. It is the well-formedness layer underneath the cxf validator and
// decoder: anything that fails here is malformed markup, anything beyond is
// schema semantics and belongs to the caller.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Attr is a single attribute with its resolved namespace. Namespace
// declarations (xmlns, xmlns:*) are consumed during parsing and do not appear
// here.
type Attr struct {
	Space string
	Local string
	Value string
}

// Element is one element node. Children preserves document order. Text is the
// concatenated character data of the element; whitespace-only character data
// is treated as formatting and dropped.
type Element struct {
	Space    string
	Local    string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// Attr returns the value of the named unqualified attribute and whether it was
// present.
func (e *Element) Attr(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Space == "" && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first child element with the given local name in the
// element's namespace, or nil.
func (e *Element) Find(local string) *Element {
	for _, c := range e.Children {
		if c.Local == local && c.Space == e.Space {
			return c
		}
	}
	return nil
}

// FindAll returns all child elements with the given local name in the
// element's namespace, preserving order.
func (e *Element) FindAll(local string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Local == local && c.Space == e.Space {
			out = append(out, c)
		}
	}
	return out
}

// Equal reports deep structural equality of two subtrees: names, attribute
// sets (order-sensitive), text and children.
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Space != o.Space || e.Local != o.Local || e.Text != o.Text {
		return false
	}
	if len(e.Attrs) != len(o.Attrs) || len(e.Children) != len(o.Children) {
		return false
	}
	for i := range e.Attrs {
		if e.Attrs[i] != o.Attrs[i] {
			return false
		}
	}
	for i := range e.Children {
		if !e.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Parse reads a complete XML document and returns its single root element.
// The decoder runs in strict mode, so unbalanced tags, illegal characters
// (including NUL) and broken entities all surface as errors. Content after the
// root element other than whitespace, comments and processing instructions is
// rejected.
func Parse(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Strict is the default; spelled out because the whole point of this layer
	// is rejecting malformed markup.
	dec.Strict = true

	var root *Element
	var stack []*Element
	var text []*strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, errors.New("content after document root")
			}
			el := &Element{Space: t.Name.Space, Local: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("unbalanced end element")
			}
			el := stack[len(stack)-1]
			el.Text = text[len(text)-1].String()
			// Whitespace-only character data is formatting, not content.
			if strings.TrimSpace(el.Text) == "" {
				el.Text = ""
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, errors.New("character data outside document root")
				}
				continue
			}
			text[len(text)-1].Write(t)
		case xml.Comment, xml.ProcInst, xml.Directive:
			// ignored
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unexpected EOF inside element %q", stack[len(stack)-1].Local)
	}
	if root == nil {
		return nil, errors.New("no document root element")
	}
	return root, nil
}
