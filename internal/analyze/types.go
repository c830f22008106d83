package analyze

import (
	"go/constant"
	"slices"
	"strings"
)

// PackageInfo contains the declarations of one loaded package.
type PackageInfo struct {
	Path string
	Name string
	// Constants are the exported constants keyed by name.
	Constants map[string]ConstInfo
	// Entries are the exported types with the methods of a control entry:
	// ID and Value on the value, UnmarshalControl on the pointer.
	Entries []string
}

// ConstInfo describes one exported constant.
type ConstInfo struct {
	Name string
	// Type is the constant's type relative to its package, e.g. "ControlID"
	// or "untyped int".
	Type  string
	Value constant.Value
}

// Uint32 returns the constant as a runtime id.
func (c ConstInfo) Uint32() (uint32, bool) {
	v, exact := constant.Uint64Val(constant.ToInt(c.Value))
	if !exact || v > 1<<32-1 {
		return 0, false
	}

	return uint32(v), true
}

// Str returns the value of a string constant.
func (c ConstInfo) Str() (string, bool) {
	if c.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(c.Value), true
}

// OfType returns the constants of the named type, sorted by name.
func (p *PackageInfo) OfType(typeName string) []ConstInfo {
	var res []ConstInfo

	for _, c := range p.Constants {
		if c.Type == typeName {
			res = append(res, c)
		}
	}

	slices.SortFunc(res, func(a, b ConstInfo) int {
		return strings.Compare(a.Name, b.Name)
	})

	return res
}

// Names returns the set of exported constant names.
func (p *PackageInfo) Names() map[string]bool {
	res := make(map[string]bool, len(p.Constants))
	for name := range p.Constants {
		res[name] = true
	}

	return res
}

// Version returns the package's Version string constant.
func (p *PackageInfo) Version() string {
	if c, ok := p.Constants["Version"]; ok {
		if s, ok := c.Str(); ok {
			return s
		}
	}

	return ""
}
