package gen

import (
	"path"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"camctl/internal/plan"
	"camctl/internal/schema"
	"camctl/primitive"
)

// Receiver and source variable names used by every conversion body.
const (
	recvName = "c"
	srcName  = "v"
)

// fileData holds all data needed for the catalogue template.
type fileData struct {
	Filename     string
	PackageName  string
	Version      string
	Digest       string
	BuildTag     string
	Imports      string
	Core         bool
	IDType       string
	Noun         string
	NounPlural   string
	Marker       string
	LinkageAlias string
	Controls     []controlData
}

// controlData is one generated control type.
type controlData struct {
	Name     string
	IDName   string
	Linkage  string
	Vendor   string
	Doc      string
	TypeExpr string
	Enum     bool
	Cases    string
	Variants []variantData
	Encode   string
	Decode   string
}

type variantData struct {
	Const string
	Name  string
	Value int64
	Doc   string
}

func (g *Generator) buildFileData(snap *plan.Snapshot, c schema.Category, vendor string) (*fileData, error) {
	data := &fileData{
		Filename:     Filename(c, vendor),
		PackageName:  g.config.PackageName,
		Version:      snap.Version,
		Digest:       snap.Digest,
		Core:         vendor == plan.CoreVendor,
		IDType:       g.config.IDType,
		Noun:         noun(c),
		NounPlural:   c.String(),
		Marker:       marker(c),
		LinkageAlias: path.Base(g.config.LinkagePkg),
	}

	if !data.Core {
		data.BuildTag = plan.BuildTag(vendor)
	}

	hasEnum := false

	for _, ctrl := range snap.ByVendor(c, vendor) {
		cd, err := g.buildControlData(ctrl, data.Noun)
		if err != nil {
			return nil, err
		}

		hasEnum = hasEnum || cd.Enum
		data.Controls = append(data.Controls, cd)
	}

	imports := []string{g.config.ControlPkg}
	if len(data.Controls) > 0 {
		imports = append(imports, g.config.LinkagePkg)
	}

	var std []string

	switch {
	case data.Core:
		std = []string{"slices", "strconv"}
	case hasEnum:
		std = []string{"strconv"}
	}

	data.Imports = importBlock(std, imports)

	return data, nil
}

func (g *Generator) buildControlData(ctrl *plan.Control, noun string) (controlData, error) {
	cd := controlData{
		Name:     ctrl.Name,
		IDName:   idName(ctrl),
		Linkage:  ctrl.LinkageName(),
		Vendor:   ctrl.Vendor,
		TypeExpr: primitive.TypeExpr(ctrl.Kind, ctrl.Dims),
		Enum:     ctrl.IsEnum(),
	}

	cd.Doc = comment(ctrl.Description, "", ctrl.Name+" is the "+ctrl.Name+" "+noun+".")

	decode, encode, err := primitive.Generate(ctrl.Kind, ctrl.Dims, cd.Enum, ctrl.Name, recvName, srcName)
	if err != nil {
		return cd, err
	}

	cd.Decode = body(decode)
	cd.Encode = body(encode)

	if cd.Enum {
		consts := make([]string, 0, len(ctrl.Enum))

		for _, v := range ctrl.Enum {
			vd := variantData{
				Const: variantConst(ctrl, v),
				Name:  v.Name,
				Value: v.Value,
			}
			vd.Doc = comment(v.Description, "\t", vd.Const+" is the "+v.Name+" variant of "+ctrl.Name+".")

			consts = append(consts, vd.Const)
			cd.Variants = append(cd.Variants, vd)
		}

		cd.Cases = strings.Join(consts, ", ")
	}

	return cd, nil
}

func idName(ctrl *plan.Control) string {
	return ctrl.Name + "ID"
}

func variantConst(ctrl *plan.Control, v plan.Variant) string {
	return ctrl.Name + v.Name
}

// marker names the method that ties a generated type to control.Control or
// control.Property.
func marker(c schema.Category) string {
	if c == schema.Properties {
		return "IsProperty"
	}

	return "IsControl"
}

func noun(c schema.Category) string {
	if c == schema.Properties {
		return "property"
	}

	return "control"
}

// comment renders text as line comments, or fallback when text is empty.
// Paragraphs holding indented lines become code blocks and paragraphs
// opening with a bullet become lists, both laid out the way gofmt prints
// doc comments so that formatting leaves them untouched.
func comment(text, indent, fallback string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		text = fallback
	}

	var out []string

	paras := paragraphs(text)
	for i, para := range paras {
		if i > 0 {
			out = append(out, indent+"//")
		}

		switch {
		case isCode(para):
			cut := commonIndent(para)
			for _, l := range para {
				out = append(out, indent+"//\t"+l[cut:])
			}
		case bullet(para[0]) != "":
			for _, l := range para {
				if m := bullet(l); m != "" {
					out = append(out, indent+"//   - "+strings.TrimSpace(l[len(m):]))

					continue
				}

				out = append(out, indent+"//     "+l)
			}
		case isHeading(paras, i):
			out = append(out, indent+"// # "+para[0])
		default:
			for _, l := range para {
				out = append(out, indent+"// "+l)
			}
		}
	}

	return strings.Join(out, "\n")
}

// paragraphs splits text at runs of blank lines.
func paragraphs(text string) [][]string {
	var (
		res [][]string
		cur []string
	)

	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			if len(cur) > 0 {
				res = append(res, cur)
				cur = nil
			}

			continue
		}

		cur = append(cur, l)
	}

	if len(cur) > 0 {
		res = append(res, cur)
	}

	return res
}

func isCode(para []string) bool {
	for _, l := range para {
		if l[0] == ' ' || l[0] == '\t' {
			return true
		}
	}

	return false
}

func commonIndent(para []string) int {
	cut := -1

	for _, l := range para {
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if cut < 0 || n < cut {
			cut = n
		}
	}

	return cut
}

// isHeading reports whether paragraph i reads as an implicit doc comment
// heading: a lone capitalised line between two other paragraphs, without
// sentence punctuation.
func isHeading(paras [][]string, i int) bool {
	if i == 0 || i == len(paras)-1 || len(paras[i]) != 1 || isCode(paras[i+1]) {
		return false
	}

	l := paras[i][0]

	first, _ := utf8.DecodeRuneInString(l)
	last, _ := utf8.DecodeLastRuneInString(l)

	return unicode.IsUpper(first) && (unicode.IsLetter(last) || unicode.IsDigit(last)) &&
		!strings.ContainsAny(l, ";:!?+*/=[]{}_^°&§~%#@<\">\\")
}

// bullet returns the list marker l opens with, if any.
func bullet(l string) string {
	for _, m := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(l, m) {
			return m
		}
	}

	return ""
}

// body indents rendered statement lines for a function body.
func body(lines []string) string {
	var sb strings.Builder

	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		if l != "" {
			sb.WriteString("\t" + l)
		}
	}

	return sb.String()
}

// importBlock renders the import declaration with the standard library
// group first.
func importBlock(std, local []string) string {
	sort.Strings(std)
	sort.Strings(local)

	var sb strings.Builder

	sb.WriteString("import (\n")

	for _, p := range std {
		sb.WriteString("\t\"" + p + "\"\n")
	}

	if len(std) > 0 && len(local) > 0 {
		sb.WriteString("\n")
	}

	for _, p := range local {
		sb.WriteString("\t\"" + p + "\"\n")
	}

	sb.WriteString(")")

	return sb.String()
}
