package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/infra/xmltree"
)

// Coercion is the declared conversion applied to a field's text.
type Coercion int

const (
	CoerceString Coercion = iota
	CoerceInt
	CoerceFloat
	CoerceBool
	CoerceObject
	CoerceList
)

func (c Coercion) String() string {
	switch c {
	case CoerceString:
		return "string"
	case CoerceInt:
		return "integer"
	case CoerceFloat:
		return "float"
	case CoerceBool:
		return "boolean"
	case CoerceObject:
		return "object"
	case CoerceList:
		return "list"
	default:
		return fmt.Sprintf("coercion(%d)", int(c))
	}
}

// Schema declares how one entity element maps onto T.
//
// Element is the tag of a single entity ("user"); List is the tag of the
// container element used by list endpoints ("users"), if any.
type Schema[T any] struct {
	Element string
	List    string
	Fields  []Field[T]
}

// Field binds one XML element (or, failing that, attribute) of an entity to T.
type Field[T any] struct {
	Name     string
	Coercion Coercion
	apply    func(dst *T, n *xmltree.Node, path string) error
}

// Str maps a verbatim string field.
func Str[T any](name string, set func(*T, string)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceString, apply: func(dst *T, n *xmltree.Node, _ string) error {
		set(dst, n.Text)
		return nil
	}}
}

// OptStr maps a string field whose absence is observable: absent and
// nil="true" elements leave the pointer nil, empty elements yield "".
func OptStr[T any](name string, set func(*T, *string)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceString, apply: func(dst *T, n *xmltree.Node, _ string) error {
		v := n.Text
		set(dst, &v)
		return nil
	}}
}

// Time maps a date-time field, kept verbatim.
func Time[T any](name string, set func(*T, domain.Timestamp)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceString, apply: func(dst *T, n *xmltree.Node, _ string) error {
		set(dst, domain.Timestamp(strings.TrimSpace(n.Text)))
		return nil
	}}
}

// OptTime is Time with observable absence, like OptStr.
func OptTime[T any](name string, set func(*T, *domain.Timestamp)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceString, apply: func(dst *T, n *xmltree.Node, _ string) error {
		v := domain.Timestamp(strings.TrimSpace(n.Text))
		set(dst, &v)
		return nil
	}}
}

// Int maps a base-10 integer field. Empty content leaves the zero value.
func Int[T any](name string, set func(*T, int)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceInt, apply: func(dst *T, n *xmltree.Node, path string) error {
		s := strings.TrimSpace(n.Text)
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return coerceError(path, s, CoerceInt)
		}
		set(dst, v)
		return nil
	}}
}

// Float maps a decimal field such as an issue position.
func Float[T any](name string, set func(*T, float64)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceFloat, apply: func(dst *T, n *xmltree.Node, path string) error {
		s := strings.TrimSpace(n.Text)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return coerceError(path, s, CoerceFloat)
		}
		set(dst, v)
		return nil
	}}
}

// Bool accepts only the literals "true" and "false".
func Bool[T any](name string, set func(*T, bool)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceBool, apply: func(dst *T, n *xmltree.Node, path string) error {
		s := strings.TrimSpace(n.Text)
		switch s {
		case "":
			return nil
		case "true":
			set(dst, true)
		case "false":
			set(dst, false)
		default:
			return coerceError(path, s, CoerceBool)
		}
		return nil
	}}
}

// One maps a child element describing a single related entity.
func One[T, U any](name string, s Schema[U], set func(*T, U)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceObject, apply: func(dst *T, n *xmltree.Node, path string) error {
		var v U
		if err := mapInto(&v, n, s, path); err != nil {
			return err
		}
		set(dst, v)
		return nil
	}}
}

// Many maps a container element whose children (tagged s.Element) are
// repeated related entities. Document order is preserved.
func Many[T, U any](name string, s Schema[U], set func(*T, []U)) Field[T] {
	return Field[T]{Name: name, Coercion: CoerceList, apply: func(dst *T, n *xmltree.Node, path string) error {
		items := n.ChildrenNamed(s.Element)
		out := make([]U, 0, len(items))
		for i, item := range items {
			var v U
			if err := mapInto(&v, item, s, fmt.Sprintf("%s/%s[%d]", path, s.Element, i)); err != nil {
				return err
			}
			out = append(out, v)
		}
		set(dst, out)
		return nil
	}}
}

func coerceError(path, text string, c Coercion) error {
	return &domain.OpError{
		Op:   "mapper.coerce",
		Kind: domain.KindMapping,
		Path: path,
		Err:  fmt.Errorf("%w: %q as %s", domain.ErrCoerce, text, c),
	}
}
