package primitive

import (
	"fmt"
	"slices"
	"strings"
)

var aliases map[string]KindEnum

func init() {
	aliases = map[string]KindEnum{}

	for kind, names := range map[KindEnum][]string{
		KindBool:      {"bool", "boolean", "_bool"},
		KindByte:      {"byte", "uint8", "uint8_t", "u8"},
		KindInt32:     {"int32", "int32_t", "i32", "int"},
		KindInt64:     {"int64", "int64_t", "i64"},
		KindFloat:     {"float", "float32", "f32"},
		KindString:    {"string", "str"},
		KindRectangle: {"rectangle", "rect"},
		KindSize:      {"size"},
		KindPoint:     {"point"},
	} {
		for _, name := range names {
			if prev, ok := aliases[name]; ok {
				panic(fmt.Sprintf("alias %q registered for both %s and %s", name, prev, kind))
			}

			aliases[name] = kind
		}
	}
}

// ParseKind maps a schema type name to its scalar kind. Names are matched
// case-insensitively against the alias table.
func ParseKind(name string) (KindEnum, error) {
	kind, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown control type %q", name)
	}

	return kind, nil
}

// Aliases returns every accepted spelling of kind in lowercase.
func Aliases(kind KindEnum) []string {
	var res []string

	for name, k := range aliases {
		if k == kind {
			res = append(res, name)
		}
	}

	slices.Sort(res)

	return res
}
