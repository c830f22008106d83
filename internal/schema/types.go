package schema

// Document is one parsed schema file.
type Document struct {
	Vendor   string  `yaml:"vendor,omitempty"`
	Controls []Entry `yaml:"controls"`
}

// Entry is one control or property definition.
type Entry struct {
	Name        string
	Type        string
	Description string
	Direction   string
	Size        SizeSpec
	Enum        []EnumItem
	Draft       bool
}

type EnumItem struct {
	Name        string `yaml:"name"`
	Value       int64  `yaml:"value"`
	Description string `yaml:"description"`
}

// SizeSpec is the optional `size` key. Dims holds positive extents and
// primitive.Dynamic for "n"; it is nil only when the key is absent.
type SizeSpec struct {
	Dims []int
}

func (s SizeSpec) IsSet() bool {
	return s.Dims != nil
}

type entryBody struct {
	Type        string     `yaml:"type"`
	Description string     `yaml:"description"`
	Direction   string     `yaml:"direction"`
	Size        SizeSpec   `yaml:"size"`
	Enum        []EnumItem `yaml:"enum"`
	Draft       bool       `yaml:"draft"`
}
