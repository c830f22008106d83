// Package properties is the typed catalogue of libcamera camera properties.
// It is generated together with package controls and follows the same
// layout.
package properties
