// Package analyze loads compiled Go packages and extracts the declarations
// the generator cross-checks: the id constants of the native linkage
// packages and the catalogue of a generated controls or properties package.
//
// It uses golang.org/x/tools/go/packages with go/types, so the view is the
// package as the compiler sees it under the given build tags.
package analyze
