package linkage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Prefixes of the id enumerators per category.
const (
	ControlPrefix  = "LIBCAMERA_CONTROL_ID_"
	PropertyPrefix = "LIBCAMERA_PROPERTY_ID_"
)

// Entry is one id enumerator with the prefix stripped.
type Entry struct {
	Name  string
	Value uint32
}

// Table is the id enumerators of one category.
type Table struct {
	// Source is the header base name the table was read from.
	Source  string
	Prefix  string
	Version string
	Entries []Entry

	index map[string]int
}

var (
	// NAME = value, or a bare NAME continuing the previous value.
	enumeratorRe = regexp.MustCompile(`^\s*([A-Z][A-Z0-9_]*)\s*(?:=\s*(0[xX][0-9a-fA-F]+|[0-9]+)[uU]?)?\s*,?\s*(?://.*)?$`)
	versionRe    = regexp.MustCompile(`^\s*#\s*define\s+LIBCAMERA_VERSION_(MAJOR|MINOR|PATCH)\s+([0-9]+)\b`)
)

// ParseFile parses the header at path.
func ParseFile(path, prefix string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening header: %w", err)
	}
	defer f.Close()

	t, err := Parse(f, prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t.Source = filepath.Base(path)

	return t, nil
}

// Parse reads every enumerator starting with prefix. Enumerators without an
// explicit value continue from the previous one, as in C.
func Parse(r io.Reader, prefix string) (*Table, error) {
	t := &Table{Prefix: prefix, index: map[string]int{}}
	version := map[string]string{}

	var (
		next    uint64
		line    int
		comment bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := scanner.Text()

		text, comment = stripComments(text, comment)

		if m := versionRe.FindStringSubmatch(text); m != nil {
			version[m[1]] = m[2]

			continue
		}

		m := enumeratorRe.FindStringSubmatch(text)
		if m == nil || !strings.HasPrefix(m[1], prefix) {
			continue
		}

		value := next
		if m[2] != "" {
			v, err := strconv.ParseUint(m[2], 0, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: value of %s: %w", line, m[1], err)
			}

			value = v
		}

		name := strings.TrimPrefix(m[1], prefix)
		if name == "" {
			return nil, fmt.Errorf("line %d: enumerator %s has no name after the prefix", line, m[1])
		}

		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("line %d: duplicate enumerator %s", line, m[1])
		}

		t.index[name] = len(t.Entries)
		t.Entries = append(t.Entries, Entry{Name: name, Value: uint32(value)})
		next = value + 1
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(version) == 3 {
		t.Version = version["MAJOR"] + "." + version["MINOR"] + "." + version["PATCH"]
	}

	return t, nil
}

// stripComments removes C comments from one line. inBlock reports whether
// the line starts inside a block comment; the second result whether the
// next one does.
func stripComments(s string, inBlock bool) (string, bool) {
	var sb strings.Builder

	for len(s) > 0 {
		if inBlock {
			end := strings.Index(s, "*/")
			if end < 0 {
				return sb.String(), true
			}

			s = s[end+2:]
			inBlock = false

			continue
		}

		start := strings.Index(s, "/*")
		if start < 0 {
			sb.WriteString(s)

			break
		}

		sb.WriteString(s[:start])
		s = s[start+2:]
		inBlock = true
	}

	return sb.String(), inBlock
}

// Lookup returns the id of a linkage name such as "AE_ENABLE".
func (t *Table) Lookup(name string) (uint32, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}

	return t.Entries[i].Value, true
}

// Names returns the set of linkage names in the table.
func (t *Table) Names() map[string]bool {
	res := make(map[string]bool, len(t.Entries))
	for _, e := range t.Entries {
		res[e.Name] = true
	}

	return res
}

// Missing returns the names absent from the table, in input order.
func (t *Table) Missing(names []string) []string {
	var res []string

	for _, n := range names {
		if _, ok := t.index[n]; !ok {
			res = append(res, n)
		}
	}

	return res
}
