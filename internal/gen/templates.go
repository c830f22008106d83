package gen

import (
	"io"
	"text/template"
)

type templateExecutor interface {
	Execute(w io.Writer, data any) error
}

var catalogueTemplate = template.Must(template.New("catalogue").Parse(`// Code generated by camctl-generator. DO NOT EDIT.
// Source: libcamera {{.Version}}, schema blake3 {{.Digest}}.
{{if .BuildTag}}
//go:build {{.BuildTag}}
{{end}}
package {{.PackageName}}

{{.Imports}}
{{if .Core}}
// Version is the libcamera release this catalogue was generated from.
const Version = "{{.Version}}"

// SchemaDigest identifies the schema documents of Version.
const SchemaDigest = "{{.Digest}}"

// {{.IDType}} is the numeric id of a {{.Noun}}, as assigned by the linked runtime.
type {{.IDType}} uint32
{{end}}
{{- if .Controls}}
const (
{{- range .Controls}}
	// {{.IDName}} identifies {{.Name}}.
	{{.IDName}} {{$.IDType}} = {{$.LinkageAlias}}.{{.Linkage}}
{{- end}}
)
{{end}}
{{- range $c := .Controls}}
{{.Doc}}
type {{.Name}} {{.TypeExpr}}
{{if .Enum}}
const (
{{- range .Variants}}
{{.Doc}}
	{{.Const}} {{$c.Name}} = {{.Value}}
{{- end}}
)

func (c {{.Name}}) IsValid() bool {
	switch c {
	case {{.Cases}}:
		return true
	}

	return false
}

func (c {{.Name}}) String() string {
	switch c {
{{- range .Variants}}
	case {{.Const}}:
		return {{printf "%q" .Name}}
{{- end}}
	}

	return "{{.Name}}(" + strconv.FormatInt(int64(c), 10) + ")"
}
{{end}}
func ({{.Name}}) ID() uint32 {
	return uint32({{.IDName}})
}

func (c {{.Name}}) Value() control.Value {
{{.Encode}}
}

func (c *{{.Name}}) UnmarshalControl(v control.Value) error {
{{.Decode}}
}

func ({{.Name}}) {{$.Marker}}() {}
{{end}}
{{- if .Core}}
type entry struct {
	name   string
	vendor string
	dyn    func(control.Value) (control.Entry, error)
}

var catalogue = map[{{.IDType}}]entry{}

var order []{{.IDType}}

func register(id {{.IDType}}, name, vendor string, dyn func(control.Value) (control.Entry, error)) {
	if _, dup := catalogue[id]; dup {
		panic("{{.PackageName}}: duplicate id for " + name)
	}

	catalogue[id] = entry{name: name, vendor: vendor, dyn: dyn}
	order = append(order, id)
}

func init() {
{{- range .Controls}}
	register({{.IDName}}, {{printf "%q" .Name}}, {{printf "%q" .Vendor}}, nil)
{{- end}}
}

// Lookup converts a raw id into a {{.IDType}} if the catalogue knows it.
func Lookup(raw uint32) ({{.IDType}}, bool) {
	id := {{.IDType}}(raw)
	_, ok := catalogue[id]

	return id, ok
}

// All returns the catalogued ids: core {{.NounPlural}} in schema order, then
// those of the vendors enabled by build tags.
func All() []{{.IDType}} {
	return slices.Clone(order)
}

func (id {{.IDType}}) String() string {
	if e, ok := catalogue[id]; ok {
		return e.name
	}

	return "{{.IDType}}(" + strconv.FormatUint(uint64(id), 10) + ")"
}

// Vendor returns the vendor that declared id, or "" for an unknown id.
func (id {{.IDType}}) Vendor() string {
	return catalogue[id].vendor
}

// MakeDyn converts v into the typed {{.Noun}} identified by id.
func MakeDyn(id {{.IDType}}, v control.Value) (control.Entry, error) {
	switch id {
{{- range .Controls}}
	case {{.IDName}}:
		return control.Dyn[{{.Name}}](v)
{{- end}}
	}

	if e, ok := catalogue[id]; ok && e.dyn != nil {
		return e.dyn(v)
	}

	return nil, &control.UnknownIDError{ID: uint32(id)}
}

// Registry resolves raw {{.Noun}} ids, e.g. for control.List.Describe.
var Registry control.Registry = registry{}

type registry struct{}

func (registry) Name(id uint32) (string, bool) {
	e, ok := catalogue[{{.IDType}}(id)]

	return e.name, ok
}

func (registry) MakeDyn(id uint32, v control.Value) (control.Entry, error) {
	return MakeDyn({{.IDType}}(id), v)
}
{{- else}}
func init() {
{{- range .Controls}}
	register({{.IDName}}, {{printf "%q" .Name}}, {{printf "%q" .Vendor}}, control.Dyn[{{.Name}}, *{{.Name}}])
{{- end}}
}
{{- end}}
`))

var linkageTemplate = template.Must(template.New("linkage").Parse(`// Code generated by camctl-generator. DO NOT EDIT.
// Source: {{.Source}}.

// Package {{.PackageName}} holds the numeric {{.Noun}} ids of the linked libcamera runtime.
package {{.PackageName}}

// Version is the runtime version declared by the header.
const Version = "{{.Version}}"
{{range .Entries}}
// {{.Name}} is {{$.Prefix}}{{.Name}}.
const {{.Name}} = {{.Value}}
{{end}}`))
