package primitive_test

import (
	"testing"

	"camctl/primitive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDims(t *testing.T) {
	t.Parallel()

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()

		d, err := primitive.MapDims(nil)
		require.NoError(t, err)
		assert.True(t, d.IsScalar())
		assert.Equal(t, 1, d.Count())
		assert.Equal(t, "scalar", d.String())
	})

	t.Run("fixed 1-D", func(t *testing.T) {
		t.Parallel()

		d, err := primitive.MapDims([]int{2})
		require.NoError(t, err)
		assert.False(t, d.IsScalar())
		assert.Equal(t, []int{2}, d.Fixed())
		assert.Equal(t, 2, d.Count())
	})

	t.Run("fixed 2-D", func(t *testing.T) {
		t.Parallel()

		d, err := primitive.MapDims([]int{4, 3})
		require.NoError(t, err)
		assert.Equal(t, 12, d.Count())
		assert.Equal(t, 3, d.Rows())
		assert.Equal(t, 4, d.Cols())
		assert.Equal(t, "[4, 3]", d.String())
	})

	t.Run("dynamic", func(t *testing.T) {
		t.Parallel()

		d, err := primitive.MapDims([]int{primitive.Dynamic})
		require.NoError(t, err)
		assert.True(t, d.IsDynamic())
		assert.Equal(t, "[n]", d.String())
	})

	t.Run("input is copied", func(t *testing.T) {
		t.Parallel()

		size := []int{2, 2}
		d, err := primitive.MapDims(size)
		require.NoError(t, err)

		size[0] = 7
		assert.Equal(t, []int{2, 2}, d.Fixed())
	})

	errs := []struct {
		name string
		size []int
		msg  string
	}{
		{"zero dimensions", []int{}, "zero dimensions"},
		{"dynamic with fixed", []int{primitive.Dynamic, 3}, "[n, 3]"},
		{"fixed with dynamic", []int{3, primitive.Dynamic}, "[3, n]"},
		{"zero extent", []int{0}, "must be positive"},
		{"negative extent", []int{2, -4}, "must be positive"},
		{"too deep", []int{2, 2, 2}, "[2, 2, 2]"},
	}

	for _, tt := range errs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := primitive.MapDims(tt.size)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
