// Package resolve picks the compiled schema snapshot that matches the
// libcamera runtime a build links against.
package resolve
