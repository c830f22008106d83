// Package plan turns the raw documents of a snapshot into normalized control
// definitions consumed by code generation.
//
// Build pipeline, per category:
//  1. Walk documents in file name order and entries in document order.
//  2. Resolve the vendor (document vendor, draft, or core).
//  3. Map the type name to a primitive kind and the size to dimensions.
//  4. Check the combination (enum kind, string sizes) and derive enum
//     variant names.
//  5. Collect every problem as a diagnostic; any error fails the build.
package plan
