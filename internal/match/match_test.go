package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"AF_MODE", "AF_MODES", 1},
		{"Hello", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestClosest(t *testing.T) {
	headers := []string{"AE_ENABLE", "AF_MODE", "AF_METERING", "LENS_POSITION"}

	got, ok := Closest("AF_MODES", headers)
	assert.True(t, ok)
	assert.Equal(t, "AF_MODE", got)

	got, ok = Closest("lens_position", headers)
	assert.True(t, ok)
	assert.Equal(t, "LENS_POSITION", got)

	_, ok = Closest("SCALER_CROP", headers)
	assert.False(t, ok)

	_, ok = Closest("x", nil)
	assert.False(t, ok)
}

func TestHint(t *testing.T) {
	commands := []string{"sync", "gen", "select", "linkage", "check", "versions"}

	assert.Equal(t, " (did you mean select?)", Hint("selct", commands))
	assert.Equal(t, " (did you mean versions?)", Hint("version", commands))
	assert.Empty(t, Hint("gen", commands))
	assert.Empty(t, Hint("bootstrap", commands))
}
