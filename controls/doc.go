// Package controls is the typed catalogue of libcamera controls for the
// schema snapshot selected for the linked runtime.
//
// Every control is a distinct Go type implementing control.Entry. Vendor
// controls are compiled in with a vendor_<name> build tag, e.g. vendor_rpi;
// without the tag their ids are unknown to Lookup, MakeDyn and Registry.
package controls

//go:generate go run camctl/cmd/camctl-generator select
