// Package control is the runtime side of camctl: the tagged value exchanged
// with the libcamera runtime, its conversions to and from typed Go values,
// and the type-erased registry used to introspect whole control lists.
//
// A Value is built either by application code (Of, OfString, OfMatrix) or by
// decoding a native cell (Decode, ReadCell). It always owns its elements and
// never aliases runtime memory. Extraction (As, AsArray, AsMatrix, AsSlice,
// AsString) checks tag and arity before touching elements and reports
// mismatches as typed errors.
//
// Generated packages (controls, properties) implement Entry for every
// control type and expose a Registry whose MakeDyn turns an (id, Value)
// pair into a typed Entry.
package control
