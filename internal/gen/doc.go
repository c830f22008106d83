// Package gen provides deterministic Go code generation for control and
// property catalogues.
//
// Generation approach uses text/template + go/format, one file per vendor:
//   - <category>_gen.go carries the core vendor, the id type and the
//     catalogue machinery (Lookup, All, MakeDyn, Registry)
//   - <category>_vendor_<v>_gen.go carries one vendor under the
//     vendor_<v> build constraint and registers itself from init
//
// Conversion bodies come from the primitive package. Numeric ids are never
// emitted here; every id references a constant of the linkage package,
// which GenerateLinkage produces from the runtime headers.
package gen
