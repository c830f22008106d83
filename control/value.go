package control

import (
	"fmt"
	"slices"
	"strconv"
)

// Element is the set of Go types a Value can hold as a sequence. Strings are
// handled separately by OfString and AsString.
type Element interface {
	bool | uint8 | int32 | int64 | float32 | Rectangle | Size | Point
}

// Value is a tagged control value. The zero Value is None.
//
// Values are immutable: constructors copy their input and extractors return
// copies, so a Value never aliases caller or runtime memory.
type Value struct {
	tag   Tag
	elems any // []T of the tag's element type, or string for TagString
}

func None() Value {
	return Value{}
}

// Of builds a value from zero or more elements. A single element encodes as
// a scalar, anything else as an array.
func Of[T Element](elems ...T) Value {
	return Value{tag: tagOf[T](), elems: slices.Clone(nonNil(elems))}
}

func OfString(s string) Value {
	return Value{tag: TagString, elems: s}
}

// OfMatrix flattens rows into row-major storage. All rows must be as long
// as the first; ragged input is a programming error and panics.
func OfMatrix[T Element](rows ...[]T) Value {
	cols := rowLen(rows)

	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("control: OfMatrix row %d has %d elements, want %d", i, len(row), cols))
		}

		flat = append(flat, row...)
	}

	return Value{tag: tagOf[T](), elems: flat}
}

func (v Value) Tag() Tag {
	return v.tag
}

func (v Value) IsNone() bool {
	return v.tag == TagNone
}

// Len is the number of stored elements. For strings it is the length in
// bytes, matching the native cell.
func (v Value) Len() int {
	switch e := v.elems.(type) {
	case nil:
		return 0
	case string:
		return len(e)
	case []bool:
		return len(e)
	case []uint8:
		return len(e)
	case []int32:
		return len(e)
	case []int64:
		return len(e)
	case []float32:
		return len(e)
	case []Rectangle:
		return len(e)
	case []Size:
		return len(e)
	case []Point:
		return len(e)
	}

	panic(fmt.Sprintf("control: unexpected element storage %T", v.elems))
}

// IsArray reports how the value is flagged in a native cell: strings are
// always arrays, None never is, anything else is an array unless it holds
// exactly one element.
func (v Value) IsArray() bool {
	switch v.tag {
	case TagNone:
		return false
	case TagString:
		return true
	default:
		return v.Len() != 1
	}
}

func (v Value) Equal(o Value) bool {
	if v.tag != o.tag {
		return false
	}

	switch e := v.elems.(type) {
	case nil:
		return o.Len() == 0
	case string:
		s, _ := o.elems.(string)
		return e == s
	case []bool:
		return equalElems(e, o)
	case []uint8:
		return equalElems(e, o)
	case []int32:
		return equalElems(e, o)
	case []int64:
		return equalElems(e, o)
	case []float32:
		return equalElems(e, o)
	case []Rectangle:
		return equalElems(e, o)
	case []Size:
		return equalElems(e, o)
	case []Point:
		return equalElems(e, o)
	}

	return false
}

// String renders the debug form, e.g. Int32([3]) or String("ok").
func (v Value) String() string {
	switch e := v.elems.(type) {
	case nil:
		if v.tag == TagNone {
			return "None"
		}

		return v.tag.String() + "([])"
	case string:
		return "String(" + strconv.Quote(e) + ")"
	default:
		return fmt.Sprintf("%s(%v)", v.tag, e)
	}
}

func equalElems[T Element](a []T, o Value) bool {
	b, _ := o.elems.([]T)
	return slices.Equal(a, b)
}

func tagOf[T Element]() Tag {
	var zero T

	switch any(zero).(type) {
	case bool:
		return TagBool
	case uint8:
		return TagByte
	case int32:
		return TagInt32
	case int64:
		return TagInt64
	case float32:
		return TagFloat
	case Rectangle:
		return TagRectangle
	case Size:
		return TagSize
	case Point:
		return TagPoint
	}

	panic(fmt.Sprintf("control: no tag for %T", zero))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func rowLen[T any](rows [][]T) int {
	if len(rows) == 0 {
		return 0
	}

	return len(rows[0])
}
