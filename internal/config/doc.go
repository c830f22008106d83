// Package config loads the generator's build inputs from camctl.jsonc (JSON
// with comments and trailing commas) and discovers the linked libcamera
// version.
package config
