package control_test

import (
	"math"
	"testing"

	"camctl/control"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v control.Value) control.Value {
	t.Helper()

	var cell control.MemCell
	control.Encode(v, &cell)

	got, err := control.ReadCell(&cell)
	require.NoError(t, err)

	return got
}

func TestScalarRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    control.Value
	}{
		{"bool true", control.Of(true)},
		{"bool false", control.Of(false)},
		{"byte", control.Of[uint8](0xff)},
		{"int32 min", control.Of[int32](math.MinInt32)},
		{"int32 max", control.Of[int32](math.MaxInt32)},
		{"int64", control.Of[int64](math.MinInt64)},
		{"float", control.Of[float32](-1.25)},
		{"string", control.OfString("hello, ĉamera")},
		{"empty string", control.OfString("")},
		{"rectangle", control.Of(control.Rectangle{X: -4, Y: 8, Width: 640, Height: 480})},
		{"size", control.Of(control.Size{Width: 1920, Height: 1080})},
		{"point", control.Of(control.Point{X: -1, Y: 2})},
		{"none", control.None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := roundTrip(t, tt.v)
			if diff := cmp.Diff(tt.v, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrayRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("fixed", func(t *testing.T) {
		t.Parallel()

		got := roundTrip(t, control.Of[float32](1.5, 2.5))

		gains, err := control.AsArray[float32](got, 2)
		require.NoError(t, err)
		assert.Equal(t, []float32{1.5, 2.5}, gains)
	})

	t.Run("matrix keeps row-major order", func(t *testing.T) {
		t.Parallel()

		m := [3][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

		v := control.OfMatrix[float32](m[0][:], m[1][:], m[2][:])
		assert.Equal(t, 9, v.Len())

		rows, err := control.AsMatrix[float32](roundTrip(t, v), 3, 3)
		require.NoError(t, err)
		assert.Equal(t, [][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, rows)

		flat, err := control.AsSlice[float32](v)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, flat)
	})

	t.Run("ragged matrix", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "control: OfMatrix row 1 has 2 elements, want 3", func() {
			control.OfMatrix[int32]([]int32{1, 2, 3}, []int32{4, 5})
		})

		assert.Equal(t, 0, control.OfMatrix[int32]().Len())
	})

	t.Run("dynamic", func(t *testing.T) {
		t.Parallel()

		windows := []control.Rectangle{{Width: 10, Height: 10}, {X: 5, Y: 5, Width: 1, Height: 1}}

		got, err := control.AsSlice[control.Rectangle](roundTrip(t, control.Of(windows...)))
		require.NoError(t, err)
		assert.Equal(t, windows, got)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		got, err := control.AsSlice[int32](roundTrip(t, control.Of[int32]()))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestValueIsCopied(t *testing.T) {
	t.Parallel()

	in := []int32{1, 2}
	v := control.Of(in...)
	in[0] = 9

	out, err := control.AsSlice[int32](v)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, out)

	out[1] = 9
	again, err := control.AsSlice[int32](v)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, again)
}

func TestIsArray(t *testing.T) {
	t.Parallel()

	assert.False(t, control.None().IsArray())
	assert.False(t, control.Of[int32](1).IsArray())
	assert.True(t, control.Of[int32](1, 2).IsArray())
	assert.True(t, control.Of[int32]().IsArray())
	assert.True(t, control.OfString("x").IsArray())
	assert.True(t, control.OfString("").IsArray())

	var cell control.MemCell
	control.Encode(control.OfString("x"), &cell)
	assert.True(t, cell.IsArray())
	assert.Equal(t, control.TagString, cell.Tag())
	assert.Equal(t, 1, cell.Len())
}

func TestValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "None", control.None().String())
	assert.Equal(t, "Int32([3])", control.Of[int32](3).String())
	assert.Equal(t, "Bool([true false])", control.Of(true, false).String())
	assert.Equal(t, `String("ok")`, control.OfString("ok").String())
	assert.Equal(t, "Rectangle([(1, 2)/3x4])",
		control.Of(control.Rectangle{X: 1, Y: 2, Width: 3, Height: 4}).String())
	assert.Equal(t, "Size([640x480])", control.Of(control.Size{Width: 640, Height: 480}).String())
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, control.Of[int32](3).Equal(control.Of[int32](3)))
	assert.False(t, control.Of[int32](3).Equal(control.Of[int64](3)))
	assert.False(t, control.Of[int32](3).Equal(control.Of[int32](3, 3)))
	assert.True(t, control.None().Equal(control.Value{}))
	assert.False(t, control.OfString("a").Equal(control.OfString("b")))
}
