// Package mapper turns parsed API documents into domain values.
//
// Every resource kind has a declared Schema: the list of XML names it reads
// and the coercion applied to each. Elements the schema does not name are
// ignored; names the document does not carry keep their zero value.
package mapper

import (
	"fmt"
	"strings"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/infra/xmltree"
)

// Map maps a single entity element.
func Map[T any](n *xmltree.Node, s Schema[T]) (T, error) {
	var out T
	if err := expectRoot(n, s.Element); err != nil {
		return out, err
	}
	if err := mapInto(&out, n, s, s.Element); err != nil {
		return out, err
	}
	return out, nil
}

// MapList maps every s.Element child of a list container, in document order.
// A childless array root is an empty list whatever its name; Rails writes an
// empty collection as <nil-classes type="array"/>.
func MapList[T any](root *xmltree.Node, s Schema[T]) ([]T, error) {
	if isEmptyArray(root) {
		return []T{}, nil
	}
	if s.List != "" {
		if err := expectRoot(root, s.List); err != nil {
			return nil, err
		}
	}

	items := root.ChildrenNamed(s.Element)
	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := mapInto(&v, item, s, fmt.Sprintf("%s/%s[%d]", root.Name, s.Element, i)); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MapBranches maps <branches><name>sha</name>...</branches>.
func MapBranches(root *xmltree.Node) (domain.BranchMap, error) {
	if err := expectRoot(root, "branches"); err != nil {
		return nil, err
	}
	out := make(domain.BranchMap, len(root.Children))
	for _, c := range root.Children {
		out[c.Name] = strings.TrimSpace(c.Text)
	}
	return out, nil
}

func mapInto[T any](dst *T, n *xmltree.Node, s Schema[T], path string) error {
	for _, f := range s.Fields {
		leaf := lookup(n, f.Name)
		if leaf == nil || leaf.IsNil() {
			continue
		}
		if err := f.apply(dst, leaf, path+"/"+f.Name); err != nil {
			return err
		}
	}
	return nil
}

// lookup prefers a child element and falls back to an attribute of n.
func lookup(n *xmltree.Node, name string) *xmltree.Node {
	if c := n.Child(name); c != nil {
		return c
	}
	if v, ok := n.Attr(name); ok {
		return &xmltree.Node{Name: name, Text: v}
	}
	return nil
}

func isEmptyArray(n *xmltree.Node) bool {
	if n == nil || len(n.Children) > 0 || n.Name == "error" || n.Name == "errors" {
		return false
	}
	if n.Name == "nil-classes" {
		return true
	}
	t, _ := n.Attr("type")
	return t == "array"
}

func expectRoot(n *xmltree.Node, want string) error {
	if n == nil {
		return &domain.OpError{
			Op:   "mapper.map",
			Kind: domain.KindMapping,
			Err:  fmt.Errorf("%w: want <%s>, got nothing", domain.ErrUnexpectedRoot, want),
		}
	}
	if n.Name == want {
		return nil
	}
	if n.Name == "error" || n.Name == "errors" {
		return &domain.OpError{
			Op:   "mapper.map",
			Kind: domain.KindRemote,
			Err:  fmt.Errorf("%w: %s", domain.ErrRemote, remoteMessage(n)),
		}
	}
	return &domain.OpError{
		Op:   "mapper.map",
		Kind: domain.KindMapping,
		Err:  fmt.Errorf("%w: want <%s>, got <%s>", domain.ErrUnexpectedRoot, want, n.Name),
	}
}

func remoteMessage(n *xmltree.Node) string {
	if msg := strings.TrimSpace(n.Text); msg != "" {
		return msg
	}
	for _, c := range n.Children {
		if msg := remoteMessage(c); msg != "" {
			return msg
		}
	}
	return "(empty)"
}
