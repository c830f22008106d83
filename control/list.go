package control

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// List is an ordered collection of (id, Value) pairs, as carried by a
// capture request or its metadata. Ids are unique; Set on an existing id
// replaces the value in place. A List is owned by its caller and is not safe
// for concurrent mutation.
type List struct {
	ids    []uint32
	values []Value
}

func NewList() *List {
	return &List{}
}

func (l *List) Len() int {
	return len(l.ids)
}

// Set stores a typed entry under its own id.
func (l *List) Set(e Entry) {
	l.SetRaw(e.ID(), e.Value())
}

func (l *List) SetRaw(id uint32, v Value) {
	if i := slices.Index(l.ids, id); i >= 0 {
		l.values[i] = v

		return
	}

	l.ids = append(l.ids, id)
	l.values = append(l.values, v)
}

func (l *List) Contains(id uint32) bool {
	return slices.Contains(l.ids, id)
}

func (l *List) GetRaw(id uint32) (Value, error) {
	i := slices.Index(l.ids, id)
	if i < 0 {
		return Value{}, &NotFoundError{ID: id}
	}

	return l.values[i], nil
}

func (l *List) Delete(id uint32) bool {
	i := slices.Index(l.ids, id)
	if i < 0 {
		return false
	}

	l.ids = slices.Delete(l.ids, i, i+1)
	l.values = slices.Delete(l.values, i, i+1)

	return true
}

// Get looks up the entry for type T by T's id and converts it. It does not
// check the category of l; ControlList and PropertyList callers use
// GetControl and GetProperty.
func Get[T Entry, PT Decoder[T]](l *List) (T, error) {
	var zero T

	v, err := l.GetRaw(zero.ID())
	if err != nil {
		return zero, err
	}

	return Unmarshal[T, PT](v)
}

// ControlList is a List of controls, as carried by a capture request and
// its metadata.
type ControlList struct {
	List
}

func NewControlList() *ControlList {
	return &ControlList{}
}

// Set stores a control under its own id.
func (l *ControlList) Set(c Control) {
	l.List.Set(c)
}

// PropertyList is a List of camera properties.
type PropertyList struct {
	List
}

func NewPropertyList() *PropertyList {
	return &PropertyList{}
}

// Set stores a property under its own id.
func (l *PropertyList) Set(p Property) {
	l.List.Set(p)
}

// GetControl is Get restricted to control types.
func GetControl[T Control, PT Decoder[T]](l *ControlList) (T, error) {
	return Get[T, PT](&l.List)
}

// GetProperty is Get restricted to property types.
func GetProperty[T Property, PT Decoder[T]](l *PropertyList) (T, error) {
	return Get[T, PT](&l.List)
}

// All iterates the pairs in insertion order.
func (l *List) All() iter.Seq2[uint32, Value] {
	return func(yield func(uint32, Value) bool) {
		for i, id := range l.ids {
			if !yield(id, l.values[i]) {
				return
			}
		}
	}
}

// ReadCells decodes native (id, cell) pairs into the list. The first cell
// that fails to decode aborts the read.
func (l *List) ReadCells(cells iter.Seq2[uint32, Cell]) error {
	for id, cell := range cells {
		v, err := ReadCell(cell)
		if err != nil {
			return fmt.Errorf("decoding control %d: %w", id, err)
		}

		l.SetRaw(id, v)
	}

	return nil
}

// WriteCells encodes every pair into the cell returned by alloc for its id.
func (l *List) WriteCells(alloc func(id uint32) (Cell, error)) error {
	for id, v := range l.All() {
		cell, err := alloc(id)
		if err != nil {
			return fmt.Errorf("allocating cell for control %d: %w", id, err)
		}

		Encode(v, cell)
	}

	return nil
}

// Described is one list pair as seen through a Registry. Entry is nil when
// Err is set; Raw is always the original value.
type Described struct {
	ID    uint32
	Name  string
	Entry Entry
	Raw   Value
	Err   error
}

func (d Described) String() string {
	key := d.Name
	if key == "" {
		key = strconv.FormatUint(uint64(d.ID), 10)
	}

	if d.Entry == nil {
		return key + ": " + d.Raw.String()
	}

	return fmt.Sprintf("%s: %v", key, d.Entry)
}

// Describe resolves every pair through r. An unknown id or a failed
// conversion does not stop the walk: the pair keeps its raw value and the
// failure is recorded in Err.
func (l *List) Describe(r Registry) []Described {
	res := make([]Described, 0, l.Len())

	for id, v := range l.All() {
		d := Described{ID: id, Raw: v}
		d.Name, _ = r.Name(id)
		d.Entry, d.Err = r.MakeDyn(id, v)

		res = append(res, d)
	}

	return res
}

// Format renders the list as a map-like debug string.
func (l *List) Format(r Registry) string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, d := range l.Describe(r) {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(d.String())
	}

	sb.WriteByte('}')

	return sb.String()
}
