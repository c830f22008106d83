package primitive_test

import (
	"strings"
	"testing"

	"camctl/primitive"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDims(t *testing.T, size ...int) primitive.Dims {
	t.Helper()

	if size == nil {
		return primitive.Dims{}
	}

	d, err := primitive.MapDims(size)
	require.NoError(t, err)

	return d
}

func TestShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind primitive.KindEnum
		size []int
		enum bool
		want primitive.ShapeEnum
	}{
		{"scalar", primitive.KindInt32, nil, false, primitive.ShapeScalar},
		{"geometry scalar", primitive.KindRectangle, nil, false, primitive.ShapeScalar},
		{"string", primitive.KindString, nil, false, primitive.ShapeString},
		{"dynamic string", primitive.KindString, []int{primitive.Dynamic}, false, primitive.ShapeString},
		{"array", primitive.KindFloat, []int{2}, false, primitive.ShapeArray},
		{"matrix", primitive.KindFloat, []int{3, 3}, false, primitive.ShapeMatrix},
		{"slice", primitive.KindRectangle, []int{primitive.Dynamic}, false, primitive.ShapeSlice},
		{"enum", primitive.KindInt32, nil, true, primitive.ShapeEnumeration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := primitive.Shape(tt.kind, mustDims(t, tt.size...), tt.enum)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects", func(t *testing.T) {
		t.Parallel()

		_, err := primitive.Shape(primitive.KindFloat, primitive.Dims{}, true)
		assert.ErrorContains(t, err, "integer kind")

		_, err = primitive.Shape(primitive.KindInt32, mustDims(t, 2), true)
		assert.ErrorContains(t, err, "cannot declare a size")

		_, err = primitive.Shape(primitive.KindString, mustDims(t, 4), false)
		assert.ErrorContains(t, err, "fixed size")

		_, err = primitive.Shape(primitive.KindEnum(0), primitive.Dims{}, false)
		assert.Error(t, err)
	})
}

func TestTypeExpr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int32", primitive.TypeExpr(primitive.KindInt32, primitive.Dims{}))
	assert.Equal(t, "[2]float32", primitive.TypeExpr(primitive.KindFloat, mustDims(t, 2)))
	assert.Equal(t, "[3][4]float32", primitive.TypeExpr(primitive.KindFloat, mustDims(t, 4, 3)))
	assert.Equal(t, "[]control.Rectangle",
		primitive.TypeExpr(primitive.KindRectangle, mustDims(t, primitive.Dynamic)))
	assert.Equal(t, "string", primitive.TypeExpr(primitive.KindString, mustDims(t, primitive.Dynamic)))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()

		dec, enc, err := primitive.Generate(primitive.KindInt32, primitive.Dims{}, false, "ExposureTime", "c", "v")
		require.NoError(t, err)
		assert.Equal(t, "x, err := control.As[int32](v)", dec[0])
		assert.Contains(t, dec, "*c = ExposureTime(x)")
		assert.Equal(t, []string{"return control.Of[int32](int32(c))"}, enc)
	})

	t.Run("matrix", func(t *testing.T) {
		t.Parallel()

		dec, enc, err := primitive.Generate(primitive.KindFloat, mustDims(t, 3, 3), false,
			"ColourCorrectionMatrix", "c", "v")
		require.NoError(t, err)
		assert.Equal(t, "rows, err := control.AsMatrix[float32](v, 3, 3)", dec[0])
		assert.Equal(t, []string{"return control.OfMatrix[float32](c[0][:], c[1][:], c[2][:])"}, enc, spew.Sdump(enc))
	})

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		dec, enc, err := primitive.Generate(primitive.KindFloat, mustDims(t, 2), false, "ColourGains", "c", "v")
		require.NoError(t, err)
		assert.Equal(t, "x, err := control.AsArray[float32](v, 2)", dec[0])
		assert.Equal(t, []string{"return control.Of[float32](c[:]...)"}, enc)
	})

	t.Run("enum keeps original value", func(t *testing.T) {
		t.Parallel()

		dec, _, err := primitive.Generate(primitive.KindInt32, primitive.Dims{}, true, "AfMode", "c", "v")
		require.NoError(t, err)

		body := strings.Join(dec, "\n")
		assert.Contains(t, body, "e := AfMode(x)")
		assert.Contains(t, body, "return &control.UnknownVariantError{Value: v}")
	})

	t.Run("invalid shape", func(t *testing.T) {
		t.Parallel()

		_, _, err := primitive.Generate(primitive.KindString, mustDims(t, 2, 2), false, "Name", "c", "v")
		assert.Error(t, err)
	})
}

func TestGoType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uint8", primitive.GoType(primitive.KindByte))
	assert.Equal(t, "control.Point", primitive.GoType(primitive.KindPoint))
}
