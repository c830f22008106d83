package control

//go:generate go tool stringer -type=Tag -trimprefix=Tag -output=tag_string.go

// Tag is the native type discriminant of a control cell.
type Tag uint32

const (
	TagNone Tag = iota
	TagBool
	TagByte
	TagInt32
	TagInt64
	TagFloat
	TagString
	TagRectangle
	TagSize
	TagPoint

	tagTotal
)

func (t Tag) IsValid() bool {
	return t < tagTotal
}

// elemSize is the size in bytes of one native element.
func (t Tag) elemSize() int {
	switch t {
	default:
		return 0
	case TagBool, TagByte, TagString:
		return 1
	case TagInt32, TagFloat:
		return 4
	case TagInt64, TagSize, TagPoint:
		return 8
	case TagRectangle:
		return 16
	}
}
