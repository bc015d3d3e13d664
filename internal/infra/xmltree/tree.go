// Package xmltree decodes an XML document into a small element tree.
//
// The tree keeps only what the mapper needs: element names (namespace
// prefixes dropped), attributes, the character data directly under each
// element, and child elements in document order.
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/dmeister/py-github/internal/domain"
)

// Attr is a single attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a parsed document.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every child element with the given name, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// IsNil reports whether the element carries the Rails nil="true" marker.
func (n *Node) IsNil() bool {
	v, ok := n.Attr("nil")
	return ok && strings.EqualFold(strings.TrimSpace(v), "true")
}

// Parse reads a whole document and returns its root element.
//
// Syntax errors (including truncated input and a missing root) are reported
// as domain.KindParse. Errors returned by r itself are reported as
// domain.KindFetch and wrap the reader's error unchanged.
func Parse(r io.Reader) (*Node, error) {
	src := &trackingReader{r: r}
	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, classify(err, src.err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, parseError(fmt.Errorf("second root element <%s>", t.Name.Local))
			}
			n := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})

		case xml.EndElement:
			top := len(stack) - 1
			stack[top].Text = text[top].String()
			stack = stack[:top]
			text = text[:top]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, parseError(errors.New("character data outside of the root element"))
				}
				continue
			}
			text[len(text)-1].Write(t)
		}
	}

	if root == nil {
		return nil, parseError(errors.New("document has no root element"))
	}
	if len(stack) > 0 {
		return nil, parseError(fmt.Errorf("element <%s> is not closed", stack[len(stack)-1].Name))
	}
	return root, nil
}

// classify separates failures of the underlying stream from malformed content.
func classify(err, readErr error) error {
	if readErr != nil && errors.Is(err, readErr) {
		return &domain.OpError{
			Op:   "xmltree.read",
			Kind: domain.KindFetch,
			Err:  err,
		}
	}
	return parseError(err)
}

type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		t.err = err
	}
	return n, err
}

func parseError(err error) error {
	return &domain.OpError{
		Op:   "xmltree.parse",
		Kind: domain.KindParse,
		Err:  fmt.Errorf("%w: %v", domain.ErrParse, err),
	}
}
