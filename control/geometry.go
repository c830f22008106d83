package control

import "fmt"

// Point, Size and Rectangle mirror the runtime's geometry structs field by
// field so native cells can be copied without conversion.
type Point struct {
	X int32 `json:"x" cbor:"x"`
	Y int32 `json:"y" cbor:"y"`
}

type Size struct {
	Width  uint32 `json:"width" cbor:"width"`
	Height uint32 `json:"height" cbor:"height"`
}

type Rectangle struct {
	X      int32  `json:"x" cbor:"x"`
	Y      int32  `json:"y" cbor:"y"`
	Width  uint32 `json:"width" cbor:"width"`
	Height uint32 `json:"height" cbor:"height"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d, %d)/%dx%d", r.X, r.Y, r.Width, r.Height)
}

// TopLeft is the rectangle's origin.
func (r Rectangle) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

func (r Rectangle) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}
