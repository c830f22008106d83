package primitive

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// Shape picks the conversion template for a control of the given kind and
// dimensionality.
func Shape(kind KindEnum, dims Dims, enum bool) (ShapeEnum, error) {
	switch {
	case !kind.IsValid():
		return 0, fmt.Errorf("invalid kind %s", kind)
	case enum:
		if !kind.IsInteger() {
			return 0, fmt.Errorf("enumerations require an integer kind, got %s", kind)
		}

		if !dims.IsScalar() {
			return 0, fmt.Errorf("enumerations cannot declare a size, got %s", dims)
		}

		return ShapeEnumeration, nil
	case kind == KindString:
		if !dims.IsScalar() && !dims.IsDynamic() {
			return 0, fmt.Errorf("strings cannot declare a fixed size, got %s", dims)
		}

		return ShapeString, nil
	case dims.IsDynamic():
		return ShapeSlice, nil
	case dims.IsScalar():
		return ShapeScalar, nil
	case len(dims.fixed) == 1:
		return ShapeArray, nil
	case len(dims.fixed) == 2:
		return ShapeMatrix, nil
	}

	return 0, fmt.Errorf("unsupported dimensionality %s", dims)
}

// TypeExpr is the underlying Go type of a generated control type: the element
// type wrapped in one array level per fixed dimension (innermost first), or a
// slice for a dynamic dimension.
func TypeExpr(kind KindEnum, dims Dims) string {
	inner := GoType(kind)

	switch {
	case kind == KindString:
		return inner
	case dims.dynamic:
		return "[]" + inner
	}

	ty := inner
	for _, n := range dims.fixed {
		ty = "[" + strconv.Itoa(n) + "]" + ty
	}

	return ty
}

// Generate renders the bodies of UnmarshalControl (decode) and Value (encode)
// for a generated control type named typeName with receiver recv.
func Generate(kind KindEnum, dims Dims, enum bool, typeName, recv, src string) (decode, encode []string, err error) {
	shape, err := Shape(kind, dims, enum)
	if err != nil {
		return nil, nil, err
	}

	rowExprs := make([]string, dims.Rows())
	for i := range rowExprs {
		rowExprs[i] = fmt.Sprintf("%s[%d][:]", recv, i)
	}

	params := map[string]any{
		"elem":     GoType(kind),
		"type":     typeName,
		"recv":     recv,
		"src":      src,
		"count":    dims.Count(),
		"rows":     dims.Rows(),
		"cols":     dims.Cols(),
		"rowExprs": strings.Join(rowExprs, ", "),
	}

	tmpl := templates[shape]

	decode, err = render(tmpl.decode, params)
	if err != nil {
		return nil, nil, err
	}

	encode, err = render(tmpl.encode, params)
	if err != nil {
		return nil, nil, err
	}

	return decode, encode, nil
}

func render(lines []string, params map[string]any) ([]string, error) {
	res := make([]string, len(lines))

	for i, line := range lines {
		tmpl, err := template.New("line").Parse(line)
		if err != nil {
			return nil, fmt.Errorf("parsing template line %q: %w", line, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, params); err != nil {
			return nil, fmt.Errorf("executing template line %q: %w", line, err)
		}

		res[i] = buf.String()
	}

	return res, nil
}
