package packet

import (
	"strconv"
	"strings"
)

// Kind tells the two Value variants apart.
type Kind uint8

const (
	// KindScalar is a single integer.
	KindScalar Kind = iota
	// KindList is an ordered sequence of Values.
	KindList
)

func (k Kind) String() string {
	if k == KindList {
		return "list"
	}
	return "scalar"
}

// Value is a scalar integer or a list of Values. The zero Value is the
// scalar 0. Values are immutable once built; Items exposes the backing
// slice and callers must not modify it.
type Value struct {
	kind  Kind
	n     int
	items []Value
}

// Scalar returns the scalar Value n.
func Scalar(n int) Value { return Value{kind: KindScalar, n: n} }

// List returns a list Value holding items in order.
func List(items ...Value) Value { return Value{kind: KindList, items: items} }

// Kind reports which variant v is.
func (v Value) Kind() Kind { return v.kind }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// Int returns the scalar's integer, or 0 for a list.
func (v Value) Int() int { return v.n }

// Items returns a list's elements, or nil for a scalar.
func (v Value) Items() []Value { return v.items }

// Len returns the number of elements of a list, or 0 for a scalar.
func (v Value) Len() int { return len(v.items) }

// Promote wraps a scalar in a one-element list. Lists are returned as is.
func (v Value) Promote() Value {
	if v.IsList() {
		return v
	}
	return List(v)
}

// String renders v in the packet grammar, without spaces.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	if !v.IsList() {
		sb.WriteString(strconv.Itoa(v.n))
		return
	}
	sb.WriteByte('[')
	for i, it := range v.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		it.write(sb)
	}
	sb.WriteByte(']')
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
