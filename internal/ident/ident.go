package ident

import (
	"strings"
	"unicode"
)

// Transform splits a CamelCase schema name into words and joins them
// lower-cased with underscores. A word starts
//   - at an upper-case letter preceded by a lower-case letter ("AeEnable"),
//   - at an upper-case letter followed by a lower-case letter ("AWBMode" -> "awb_mode"),
//   - at a non-digit preceded by a digit ("Gain2x" -> "gain2_x").
//
// The first character never starts a new word.
func Transform(name string) string {
	return strings.ToLower(strings.Join(Tokenize(name), "_"))
}

// LinkageName is the name of the runtime constant carrying the numeric id of
// the control, e.g. "AeEnable" -> "AE_ENABLE".
func LinkageName(name string) string {
	return strings.ToUpper(Transform(name))
}

// Tokenize splits name at the word boundaries described on Transform,
// keeping the original case.
func Tokenize(name string) []string {
	if name == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && shouldStartNewToken(runes, i) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	return append(tokens, current.String())
}

func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if unicode.IsUpper(r) && unicode.IsLower(prev) {
		return true
	}

	if unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}

	return !unicode.IsDigit(r) && unicode.IsDigit(prev)
}

// VariantName strips the owning control's name from an enumerator name:
// VariantName("AfMode", "AfModeAuto") == "Auto". Enumerators that do not
// mention the control keep their name.
func VariantName(control, enumerator string) string {
	return strings.ReplaceAll(enumerator, control, "")
}

// IsExported reports whether s is a valid exported Go identifier.
func IsExported(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case i == 0 && !unicode.IsUpper(r):
			return false
		case r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r):
			return false
		}
	}

	return true
}

// Upper upper-cases the first letter of s.
func Upper(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
