package control

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode encodes with Core Deterministic Encoding so a recorded list always
// produces identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("control: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("control: CBOR decoder initialization failed: " + err.Error())
	}
}

// ParseTag is the inverse of Tag.String.
func ParseTag(name string) (Tag, error) {
	for t := TagNone; t < tagTotal; t++ {
		if t.String() == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown control value type %q", name)
}

func (t Tag) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, &UnknownTypeError{Tag: uint32(t)}
	}

	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

type cborValue struct {
	Type  string          `cbor:"type"`
	Elems cbor.RawMessage `cbor:"elems,omitempty"`
}

type jsonValue struct {
	Type  string          `json:"type"`
	Elems json.RawMessage `json:"elems,omitempty"`
}

// MarshalCBOR encodes the value as {type, elems}.
func (v Value) MarshalCBOR() ([]byte, error) {
	w := cborValue{Type: v.tag.String()}

	if v.tag != TagNone {
		elems, err := encMode.Marshal(v.elems)
		if err != nil {
			return nil, fmt.Errorf("encoding %s elements: %w", v.tag, err)
		}

		w.Elems = elems
	}

	return encMode.Marshal(w)
}

// UnmarshalCBOR decodes {type, elems}. The elements must decode as the
// element type named by type.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var w cborValue
	if err := decMode.Unmarshal(data, &w); err != nil {
		return err
	}

	return v.unmarshalElems(w.Type, len(w.Elems) == 0, func(dst any) error {
		return decMode.Unmarshal(w.Elems, dst)
	})
}

func (v Value) MarshalJSON() ([]byte, error) {
	w := jsonValue{Type: v.tag.String()}

	if v.tag != TagNone {
		elems, err := json.Marshal(v.elems)
		if err != nil {
			return nil, fmt.Errorf("encoding %s elements: %w", v.tag, err)
		}

		w.Elems = elems
	}

	return json.Marshal(w)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var w jsonValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	return v.unmarshalElems(w.Type, len(w.Elems) == 0, func(dst any) error {
		return json.Unmarshal(w.Elems, dst)
	})
}

func (v *Value) unmarshalElems(typ string, empty bool, decode func(dst any) error) error {
	tag, err := ParseTag(typ)
	if err != nil {
		return err
	}

	if tag == TagNone {
		if !empty {
			return fmt.Errorf("%w: None carries elements", ErrInvalidData)
		}

		*v = Value{}

		return nil
	}

	var res Value

	switch tag {
	case TagBool:
		res, err = decodeWire[bool](empty, decode)
	case TagByte:
		res, err = decodeWire[uint8](empty, decode)
	case TagInt32:
		res, err = decodeWire[int32](empty, decode)
	case TagInt64:
		res, err = decodeWire[int64](empty, decode)
	case TagFloat:
		res, err = decodeWire[float32](empty, decode)
	case TagRectangle:
		res, err = decodeWire[Rectangle](empty, decode)
	case TagSize:
		res, err = decodeWire[Size](empty, decode)
	case TagPoint:
		res, err = decodeWire[Point](empty, decode)
	case TagString:
		var s string
		if !empty {
			err = decode(&s)
		}

		res = OfString(s)
	}

	if err != nil {
		return fmt.Errorf("%w: %s elements: %w", ErrInvalidData, tag, err)
	}

	*v = res

	return nil
}

func decodeWire[T Element](empty bool, decode func(dst any) error) (Value, error) {
	var elems []T

	if !empty {
		if err := decode(&elems); err != nil {
			return Value{}, err
		}
	}

	return Of(elems...), nil
}

type listEntry struct {
	ID    uint32 `json:"id" cbor:"id"`
	Value Value  `json:"value" cbor:"value"`
}

func (l *List) entries() []listEntry {
	res := make([]listEntry, 0, l.Len())
	for id, v := range l.All() {
		res = append(res, listEntry{ID: id, Value: v})
	}

	return res
}

func (l *List) fromEntries(entries []listEntry) {
	*l = List{}
	for _, e := range entries {
		l.SetRaw(e.ID, e.Value)
	}
}

// MarshalCBOR encodes the list as an ordered array of {id, value}.
func (l *List) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(l.entries())
}

func (l *List) UnmarshalCBOR(data []byte) error {
	var entries []listEntry
	if err := decMode.Unmarshal(data, &entries); err != nil {
		return err
	}

	l.fromEntries(entries)

	return nil
}

func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.entries())
}

func (l *List) UnmarshalJSON(data []byte) error {
	var entries []listEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	l.fromEntries(entries)

	return nil
}

// MarshalList and UnmarshalList are the CBOR entry points used to record and
// replay capture metadata.
func MarshalList(l *List) ([]byte, error) {
	return encMode.Marshal(l)
}

func UnmarshalList(data []byte) (*List, error) {
	l := NewList()
	if err := decMode.Unmarshal(data, l); err != nil {
		return nil, err
	}

	return l, nil
}

type infoEntry struct {
	ID   uint32 `cbor:"id"`
	Info Info   `cbor:"info"`
}

// MarshalCBOR encodes the map as an array of {id, info} in id order.
func (m *InfoMap) MarshalCBOR() ([]byte, error) {
	entries := make([]infoEntry, 0, m.Len())
	for id, info := range m.All() {
		entries = append(entries, infoEntry{ID: id, Info: info})
	}

	return encMode.Marshal(entries)
}

func (m *InfoMap) UnmarshalCBOR(data []byte) error {
	var entries []infoEntry
	if err := decMode.Unmarshal(data, &entries); err != nil {
		return err
	}

	*m = InfoMap{infos: make(map[uint32]Info, len(entries))}
	for _, e := range entries {
		m.Set(e.ID, e.Info)
	}

	return nil
}
