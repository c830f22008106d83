package control

// Entry is a typed control value that knows its own id. Every generated
// control type implements it.
type Entry interface {
	ID() uint32
	Value() Value
}

// Control is an Entry generated from a control schema. The marker method
// keeps property types out of control-only APIs such as GetControl.
type Control interface {
	Entry
	IsControl()
}

// Property is an Entry generated from a property schema.
type Property interface {
	Entry
	IsProperty()
}

// Decoder is the pointer side of a generated control type.
type Decoder[T any] interface {
	*T
	UnmarshalControl(Value) error
}

// Unmarshal converts v into the control type T.
func Unmarshal[T any, PT Decoder[T]](v Value) (T, error) {
	var x T

	if err := PT(&x).UnmarshalControl(v); err != nil {
		return x, err
	}

	return x, nil
}

// Dyn converts v into T and returns it type-erased. Generated MakeDyn
// dispatchers call it once per control.
func Dyn[T Entry, PT Decoder[T]](v Value) (Entry, error) {
	x, err := Unmarshal[T, PT](v)
	if err != nil {
		return nil, err
	}

	return x, nil
}

// Registry resolves raw ids of one category (controls or properties).
type Registry interface {
	// Name returns the schema name of id, if id is in the catalogue.
	Name(id uint32) (string, bool)
	// MakeDyn converts v into the typed entry for id. Unknown ids fail with
	// *UnknownIDError, failed conversions with the conversion error.
	MakeDyn(id uint32, v Value) (Entry, error)
}
