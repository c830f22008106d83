package primitive

// ShapeEnum selects the conversion template for a generated control type.
type ShapeEnum int

const (
	_ ShapeEnum = iota

	ShapeScalar
	ShapeString
	ShapeArray
	ShapeMatrix
	ShapeSlice
	ShapeEnumeration
)

// ControlPkg is the qualifier of the runtime value package in generated code.
const ControlPkg = "control"

var (
	goTypes   map[KindEnum]string
	templates map[ShapeEnum]shapeTemplate
)

type shapeTemplate struct {
	decode []string
	encode []string
}

func init() {
	goTypes = map[KindEnum]string{
		KindBool:      "bool",
		KindByte:      "uint8",
		KindInt32:     "int32",
		KindInt64:     "int64",
		KindFloat:     "float32",
		KindString:    "string",
		KindRectangle: ControlPkg + ".Rectangle",
		KindSize:      ControlPkg + ".Size",
		KindPoint:     ControlPkg + ".Point",
	}

	templates = map[ShapeEnum]shapeTemplate{}

	templates[ShapeScalar] = shapeTemplate{
		decode: []string{
			"x, err := control.As[{{.elem}}]({{.src}})",
			"if err != nil {",
			"	return err",
			"}",
			"",
			"*{{.recv}} = {{.type}}(x)",
			"",
			"return nil",
		},
		encode: []string{"return control.Of[{{.elem}}]({{.elem}}({{.recv}}))"},
	}

	templates[ShapeString] = shapeTemplate{
		decode: []string{
			"x, err := control.AsString({{.src}})",
			"if err != nil {",
			"	return err",
			"}",
			"",
			"*{{.recv}} = {{.type}}(x)",
			"",
			"return nil",
		},
		encode: []string{"return control.OfString(string({{.recv}}))"},
	}

	templates[ShapeArray] = shapeTemplate{
		decode: []string{
			"x, err := control.AsArray[{{.elem}}]({{.src}}, {{.count}})",
			"if err != nil {",
			"	return err",
			"}",
			"",
			"copy({{.recv}}[:], x)",
			"",
			"return nil",
		},
		encode: []string{"return control.Of[{{.elem}}]({{.recv}}[:]...)"},
	}

	templates[ShapeMatrix] = shapeTemplate{
		decode: []string{
			"rows, err := control.AsMatrix[{{.elem}}]({{.src}}, {{.rows}}, {{.cols}})",
			"if err != nil {",
			"	return err",
			"}",
			"",
			"for i := range {{.recv}} {",
			"	copy({{.recv}}[i][:], rows[i])",
			"}",
			"",
			"return nil",
		},
		encode: []string{"return control.OfMatrix[{{.elem}}]({{.rowExprs}})"},
	}

	templates[ShapeSlice] = shapeTemplate{
		decode: []string{
			"x, err := control.AsSlice[{{.elem}}]({{.src}})",
			"if err != nil {",
			"	return err",
			"}",
			"",
			"*{{.recv}} = {{.type}}(x)",
			"",
			"return nil",
		},
		encode: []string{"return control.Of[{{.elem}}]({{.recv}}...)"},
	}

	templates[ShapeEnumeration] = shapeTemplate{
		decode: []string{
			"x, err := control.As[{{.elem}}]({{.src}})",
			"if err != nil {",
			"	return err",
			"}",
			"",
			"e := {{.type}}(x)",
			"if !e.IsValid() {",
			"	return &control.UnknownVariantError{Value: {{.src}}}",
			"}",
			"",
			"*{{.recv}} = e",
			"",
			"return nil",
		},
		encode: []string{"return control.Of[{{.elem}}]({{.elem}}({{.recv}}))"},
	}
}

// GoType is the Go element type for kind as spelled in generated code.
func GoType(kind KindEnum) string {
	return goTypes[kind]
}

