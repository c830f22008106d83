package control

import (
	"math"
	"unicode/utf8"
	"unsafe"
)

// Cell is the runtime's native control value slot. Set receives a pointer to
// n elements of the tag's native type; the cell must copy them before
// returning. The accessors describe the cell's current contents.
type Cell interface {
	Set(tag Tag, data unsafe.Pointer, isArray bool, n int)
	Tag() Tag
	Len() int
	IsArray() bool
	Data() unsafe.Pointer
}

// Decode copies n native elements of the type identified by tag out of data.
// Unknown tags fail before data is read.
func Decode(tag uint32, n int, data unsafe.Pointer) (Value, error) {
	t := Tag(tag)
	if !t.IsValid() {
		return Value{}, &UnknownTypeError{Tag: tag}
	}

	if t == TagNone {
		return Value{}, nil
	}

	if n < 0 || (n > 0 && data == nil) || n > math.MaxInt/t.elemSize() {
		return Value{}, ErrInvalidData
	}

	switch t {
	case TagBool:
		raw := unsafe.Slice((*uint8)(data), n)
		elems := make([]bool, n)
		for i, b := range raw {
			elems[i] = b != 0
		}

		return Value{tag: t, elems: elems}, nil
	case TagByte:
		return decodeElems[uint8](t, n, data), nil
	case TagInt32:
		return decodeElems[int32](t, n, data), nil
	case TagInt64:
		return decodeElems[int64](t, n, data), nil
	case TagFloat:
		return decodeElems[float32](t, n, data), nil
	case TagString:
		s := string(unsafe.Slice((*byte)(data), n))
		if !utf8.ValidString(s) {
			return Value{}, ErrInvalidData
		}

		return Value{tag: t, elems: s}, nil
	case TagRectangle:
		return decodeElems[Rectangle](t, n, data), nil
	case TagSize:
		return decodeElems[Size](t, n, data), nil
	case TagPoint:
		return decodeElems[Point](t, n, data), nil
	}

	return Value{}, &UnknownTypeError{Tag: tag}
}

func decodeElems[T Element](t Tag, n int, data unsafe.Pointer) Value {
	elems := make([]T, n)
	if n > 0 {
		copy(elems, unsafe.Slice((*T)(data), n))
	}

	return Value{tag: t, elems: elems}
}

// ReadCell decodes the current contents of cell.
func ReadCell(cell Cell) (Value, error) {
	return Decode(uint32(cell.Tag()), cell.Len(), cell.Data())
}

// Encode writes v into cell. The pointer handed to Set references v's own
// storage and is only valid for the duration of the call.
func Encode(v Value, cell Cell) {
	n := v.Len()

	var data unsafe.Pointer

	if n > 0 {
		switch e := v.elems.(type) {
		case string:
			data = unsafe.Pointer(unsafe.StringData(e))
		case []bool:
			data = unsafe.Pointer(unsafe.SliceData(e))
		case []uint8:
			data = unsafe.Pointer(unsafe.SliceData(e))
		case []int32:
			data = unsafe.Pointer(unsafe.SliceData(e))
		case []int64:
			data = unsafe.Pointer(unsafe.SliceData(e))
		case []float32:
			data = unsafe.Pointer(unsafe.SliceData(e))
		case []Rectangle:
			data = unsafe.Pointer(unsafe.SliceData(e))
		case []Size:
			data = unsafe.Pointer(unsafe.SliceData(e))
		case []Point:
			data = unsafe.Pointer(unsafe.SliceData(e))
		}
	}

	cell.Set(v.tag, data, v.IsArray(), n)
}

// MemCell is a Cell backed by Go memory. Like the runtime's cell it copies
// on Set; its storage is 8-byte aligned for every element type.
type MemCell struct {
	tag     Tag
	isArray bool
	n       int
	buf     []uint64
}

func (c *MemCell) Set(tag Tag, data unsafe.Pointer, isArray bool, n int) {
	size := n * tag.elemSize()

	c.tag = tag
	c.isArray = isArray
	c.n = n
	c.buf = make([]uint64, (size+7)/8)

	if size > 0 {
		dst := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(c.buf))), size)
		copy(dst, unsafe.Slice((*byte)(data), size))
	}
}

func (c *MemCell) Tag() Tag {
	return c.tag
}

func (c *MemCell) Len() int {
	return c.n
}

func (c *MemCell) IsArray() bool {
	return c.isArray
}

func (c *MemCell) Data() unsafe.Pointer {
	if len(c.buf) == 0 {
		return nil
	}

	return unsafe.Pointer(unsafe.SliceData(c.buf))
}

// Bytes is the raw native encoding of the cell contents.
func (c *MemCell) Bytes() []byte {
	size := c.n * c.tag.elemSize()
	if size == 0 {
		return nil
	}

	return append([]byte(nil), unsafe.Slice((*byte)(c.Data()), size)...)
}

// ReadScalar extracts a scalar of type T straight from cell. Tag and arity
// are checked against the cell header before its data is read.
func ReadScalar[T Element](cell Cell) (T, error) {
	var zero T

	if want := tagOf[T](); cell.Tag() != want {
		return zero, &InvalidTypeError{Expected: want, Found: cell.Tag()}
	}

	if cell.Len() != 1 {
		return zero, &InvalidLengthError{Expected: 1, Found: cell.Len()}
	}

	v, err := ReadCell(cell)
	if err != nil {
		return zero, err
	}

	return As[T](v)
}
