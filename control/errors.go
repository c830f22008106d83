package control

import (
	"errors"
	"fmt"
)

// ErrInvalidData is returned when a native cell is malformed: a negative
// element count, a missing data pointer, or a string that is not UTF-8.
var ErrInvalidData = errors.New("invalid control data")

// InvalidTypeError reports a tag mismatch during extraction.
type InvalidTypeError struct {
	Expected Tag
	Found    Tag
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("control value type mismatch: expected %s, found %s", e.Expected, e.Found)
}

// InvalidLengthError reports an element count mismatch during extraction.
type InvalidLengthError struct {
	Expected int
	Found    int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("control value length mismatch: expected %d, found %d", e.Expected, e.Found)
}

// UnknownTypeError reports a native tag outside the known set.
type UnknownTypeError struct {
	Tag uint32
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown control value type %d", e.Tag)
}

// UnknownVariantError is returned by enum controls when the value is not one
// of the declared variants. Value is the original, unconverted value.
type UnknownVariantError struct {
	Value Value
}

func (e *UnknownVariantError) Error() string {
	return "unknown enum variant " + e.Value.String()
}

// NotFoundError is returned by List lookups for an id that is not present.
type NotFoundError struct {
	ID uint32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("control %d not found", e.ID)
}

// UnknownIDError is returned by a Registry for an id outside its catalogue,
// including vendor controls compiled out of the build.
type UnknownIDError struct {
	ID uint32
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown control id %d", e.ID)
}
