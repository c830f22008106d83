package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the scalar kind of a control as declared by the schema `type` key.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBool
	KindByte
	KindInt32
	KindInt64
	KindFloat
	KindString
	KindRectangle
	KindSize
	KindPoint

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindByte, KindInt32, KindInt64, KindFloat:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindByte, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsGeometry() bool {
	switch k {
	default:
		return false
	case KindRectangle, KindSize, KindPoint:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindByte:
		return 8
	case KindInt32, KindFloat:
		return 32
	case KindInt64:
		return 64
	}
}

// ElemSize is the size in bytes of one native element of this kind.
// Strings are counted per byte.
func (k KindEnum) ElemSize() int {
	switch k {
	default:
		return 0
	case KindBool, KindByte, KindString:
		return 1
	case KindInt32, KindFloat:
		return 4
	case KindInt64, KindSize, KindPoint:
		return 8
	case KindRectangle:
		return 16
	}
}

// FitsInt reports whether v is representable in an integer kind.
func (k KindEnum) FitsInt(v int64) bool {
	switch k {
	default:
		return false
	case KindByte:
		return v >= 0 && v <= 0xff
	case KindInt32:
		return v >= -1<<31 && v <= 1<<31-1
	case KindInt64:
		return true
	}
}
