package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the three shapes a leaf can take.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindList
)

// Value is a record leaf: absent (null), a scalar string, or a list of strings.
// The zero Value is null. A scalar is never the empty string.
type Value struct {
	kind   Kind
	scalar string
	list   []string
}

// Null returns the absent value.
func Null() Value { return Value{} }

// Scalar returns s as a scalar, or null when s is blank.
func Scalar(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Value{}
	}
	return Value{kind: KindScalar, scalar: s}
}

// List returns a list value. Blank items are dropped; an empty list stays a list.
func List(items ...string) Value {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	return Value{kind: KindList, list: out}
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }
func (v Value) IsScalar() bool  { return v.kind == KindScalar }
func (v Value) IsList() bool    { return v.kind == KindList }
func (v Value) String() string  { return v.scalar }
func (v Value) Items() []string { return append([]string(nil), v.list...) }

// Text renders the value for display: the scalar, or list items joined by sep.
// Null renders as "".
func (v Value) Text(sep string) string {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindList:
		return strings.Join(v.list, sep)
	default:
		return ""
	}
}

// Empty reports whether the value carries nothing to display.
func (v Value) Empty() bool {
	return v.kind == KindNull || (v.kind == KindList && len(v.list) == 0)
}

// Equal compares kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.scalar != o.scalar || len(v.list) != len(o.list) {
		return false
	}
	for i := range v.list {
		if v.list[i] != o.list[i] {
			return false
		}
	}
	return true
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindScalar:
		return json.Marshal(v.scalar)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case nil:
		*v = Null()
	case []any:
		items := make([]string, 0, len(t))
		for _, el := range t {
			s, ok := scalarText(el)
			if !ok {
				return fmt.Errorf("schema: list item of type %T is not a scalar", el)
			}
			items = append(items, s)
		}
		*v = List(items...)
	default:
		s, ok := scalarText(t)
		if !ok {
			return fmt.Errorf("schema: leaf of type %T is not a scalar or list", t)
		}
		*v = Scalar(s)
	}
	return nil
}

// scalarText renders a decoded JSON scalar as text. Nulls inside lists become "".
func scalarText(x any) (string, bool) {
	switch t := x.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
