// Package ident derives the names generated code uses from schema control
// names.
//
// Key functions:
//   - Transform: snake_case form of a CamelCase schema name
//   - LinkageName: upper-case form naming the runtime's id constant
//   - VariantName: enumerator name with the owning control name removed
//   - IsExported: checks a generated Go identifier
package ident
