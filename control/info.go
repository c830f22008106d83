package control

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Info describes what a camera accepts for one control: the bounds, the
// default and, for controls limited to a discrete set, the accepted values.
// Any of Min, Max and Def may be None.
type Info struct {
	Min    Value   `json:"min" cbor:"min"`
	Max    Value   `json:"max" cbor:"max"`
	Def    Value   `json:"def" cbor:"def"`
	Values []Value `json:"values,omitempty" cbor:"values,omitempty"`
}

// ReadInfo decodes the native cells of one control info.
func ReadInfo(minCell, maxCell, defCell Cell, values ...Cell) (Info, error) {
	var (
		info Info
		err  error
	)

	if info.Min, err = ReadCell(minCell); err != nil {
		return Info{}, fmt.Errorf("min: %w", err)
	}

	if info.Max, err = ReadCell(maxCell); err != nil {
		return Info{}, fmt.Errorf("max: %w", err)
	}

	if info.Def, err = ReadCell(defCell); err != nil {
		return Info{}, fmt.Errorf("def: %w", err)
	}

	for i, cell := range values {
		v, err := ReadCell(cell)
		if err != nil {
			return Info{}, fmt.Errorf("value %d: %w", i, err)
		}

		info.Values = append(info.Values, v)
	}

	return info, nil
}

func (i Info) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s..%s] def %s", i.Min, i.Max, i.Def)

	if len(i.Values) > 0 {
		sb.WriteString(" of ")

		for n, v := range i.Values {
			if n > 0 {
				sb.WriteByte('|')
			}

			sb.WriteString(v.String())
		}
	}

	return sb.String()
}

// InfoMap holds the Info of every control a camera exposes, keyed by id.
// Like List it is owned by its caller and not safe for concurrent mutation.
type InfoMap struct {
	infos map[uint32]Info
}

func NewInfoMap() *InfoMap {
	return &InfoMap{infos: map[uint32]Info{}}
}

// Set stores info under id, replacing any previous entry.
func (m *InfoMap) Set(id uint32, info Info) {
	if m.infos == nil {
		m.infos = map[uint32]Info{}
	}

	m.infos[id] = info
}

func (m *InfoMap) Len() int {
	return len(m.infos)
}

// Count is 1 when the map holds id and 0 otherwise.
func (m *InfoMap) Count(id uint32) int {
	if _, ok := m.infos[id]; ok {
		return 1
	}

	return 0
}

func (m *InfoMap) Find(id uint32) (Info, bool) {
	info, ok := m.infos[id]

	return info, ok
}

// At is Find that fails with *NotFoundError for an absent id.
func (m *InfoMap) At(id uint32) (Info, error) {
	info, ok := m.infos[id]
	if !ok {
		return Info{}, &NotFoundError{ID: id}
	}

	return info, nil
}

// All iterates the entries in ascending id order.
func (m *InfoMap) All() iter.Seq2[uint32, Info] {
	return func(yield func(uint32, Info) bool) {
		for _, id := range slices.Sorted(maps.Keys(m.infos)) {
			if !yield(id, m.infos[id]) {
				return
			}
		}
	}
}

// InfoOf looks up the info of control type T by T's id.
func InfoOf[T Control](m *InfoMap) (Info, error) {
	var zero T

	return m.At(zero.ID())
}

// Format renders the map as a map-like debug string. Ids r cannot name are
// printed as numbers.
func (m *InfoMap) Format(r Registry) string {
	var sb strings.Builder

	sb.WriteByte('{')

	n := 0
	for id, info := range m.All() {
		if n > 0 {
			sb.WriteString(", ")
		}

		n++

		name, ok := r.Name(id)
		if !ok {
			name = strconv.FormatUint(uint64(id), 10)
		}

		sb.WriteString(name + ": " + info.String())
	}

	sb.WriteByte('}')

	return sb.String()
}
