package primitive

import (
	"fmt"
	"strconv"
	"strings"
)

// Dynamic marks a variable-length dimension ("n" in the schema) in a size spec.
const Dynamic = -1

// MaxFixedDims is the deepest fixed array the runtime can extract.
const MaxFixedDims = 2

// Dims is the dimensionality of a control: scalar (the zero value), a fixed
// N-D array, or a single dynamic dimension.
type Dims struct {
	fixed   []int
	dynamic bool
}

// MapDims validates a schema size spec. A nil spec is scalar; an empty spec,
// a dynamic marker mixed with any other dimension, a non-positive extent or
// more than MaxFixedDims fixed dimensions are rejected with the offending spec.
func MapDims(size []int) (Dims, error) {
	if size == nil {
		return Dims{}, nil
	}

	if len(size) == 0 {
		return Dims{}, fmt.Errorf("array-like size %s has zero dimensions", formatSize(size))
	}

	for _, n := range size {
		if n == Dynamic {
			if len(size) > 1 {
				return Dims{}, fmt.Errorf("size %s: dynamic length with more than 1 dimension is not supported",
					formatSize(size))
			}

			return Dims{dynamic: true}, nil
		}

		if n <= 0 {
			return Dims{}, fmt.Errorf("size %s: dimension must be positive, got %d", formatSize(size), n)
		}
	}

	if len(size) > MaxFixedDims {
		return Dims{}, fmt.Errorf("size %s: at most %d fixed dimensions are supported", formatSize(size), MaxFixedDims)
	}

	return Dims{fixed: append([]int(nil), size...)}, nil
}

func (d Dims) IsScalar() bool {
	return !d.dynamic && len(d.fixed) == 0
}

func (d Dims) IsDynamic() bool {
	return d.dynamic
}

// Fixed returns the fixed extents in schema order.
func (d Dims) Fixed() []int {
	return append([]int(nil), d.fixed...)
}

// Count is the number of stored elements of a fixed array; 1 for scalars.
func (d Dims) Count() int {
	n := 1
	for _, e := range d.fixed {
		n *= e
	}

	return n
}

// Rows and Cols describe a 2-D array. The schema lists the innermost
// dimension first, so size [a, b] is b rows of a elements.
func (d Dims) Rows() int {
	if len(d.fixed) != 2 {
		return 0
	}

	return d.fixed[1]
}

func (d Dims) Cols() int {
	if len(d.fixed) != 2 {
		return 0
	}

	return d.fixed[0]
}

func (d Dims) String() string {
	switch {
	case d.dynamic:
		return "[n]"
	case len(d.fixed) == 0:
		return "scalar"
	default:
		return formatSize(d.fixed)
	}
}

func formatSize(size []int) string {
	parts := make([]string, len(size))
	for i, n := range size {
		if n == Dynamic {
			parts[i] = "n"
		} else {
			parts[i] = strconv.Itoa(n)
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
