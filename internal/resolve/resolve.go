package resolve

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"camctl/internal/source"
)

// Mode is the compatibility rule between a snapshot and the linked runtime.
type Mode int

const (
	_ Mode = iota

	// Exact accepts only the snapshot with the linked major.minor.patch.
	Exact
	// Caret accepts snapshots the linked version satisfies as "^snapshot":
	// not newer than linked, same major, and same minor while major is 0.
	Caret
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Caret:
		return "caret"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact, nil
	case "caret":
		return Caret, nil
	}

	return 0, fmt.Errorf("unknown resolution mode %q (want exact or caret)", s)
}

// NoCompatibleError reports that no snapshot matches the linked version.
type NoCompatibleError struct {
	Linked    string
	Mode      Mode
	Available []string
}

func (e *NoCompatibleError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}

	return fmt.Sprintf("no schema snapshot is compatible with libcamera %s (mode %s); available: %s",
		e.Linked, e.Mode, available)
}

// Resolve returns the greatest available version compatible with linked.
// Versions are given without the "v" prefix.
func Resolve(available []string, linked string, mode Mode) (string, error) {
	lv, err := canonical(linked)
	if err != nil {
		return "", fmt.Errorf("linked version: %w", err)
	}

	if mode != Exact && mode != Caret {
		return "", fmt.Errorf("invalid resolution mode %s", mode)
	}

	best := ""

	for _, a := range available {
		cv, err := canonical(a)
		if err != nil {
			return "", fmt.Errorf("available version: %w", err)
		}

		if !compatible(cv, lv, mode) {
			continue
		}

		if best == "" || semver.Compare(cv, best) > 0 {
			best = cv
		}
	}

	if best == "" {
		return "", &NoCompatibleError{Linked: linked, Mode: mode, Available: available}
	}

	return strings.TrimPrefix(best, "v"), nil
}

// Compatible reports whether the snapshot version candidate serves linked.
func Compatible(candidate, linked string, mode Mode) bool {
	cv, err := canonical(candidate)
	if err != nil {
		return false
	}

	lv, err := canonical(linked)
	if err != nil {
		return false
	}

	return compatible(cv, lv, mode)
}

// Available lists the snapshot versions of a snapshot store.
func Available(dir string) ([]string, error) {
	return source.Versions(dir)
}

func compatible(candidate, linked string, mode Mode) bool {
	switch mode {
	case Exact:
		return release(candidate) == release(linked)
	case Caret:
		if semver.Compare(candidate, linked) > 0 || semver.Major(candidate) != semver.Major(linked) {
			return false
		}

		if semver.Major(candidate) != "v0" {
			return true
		}

		if semver.MajorMinor(candidate) != semver.MajorMinor(linked) {
			return false
		}

		// ^0.0.z admits only 0.0.z.
		return semver.MajorMinor(candidate) != "v0.0" || release(candidate) == release(linked)
	}

	return false
}

// canonical validates a full major.minor.patch version and returns it with
// the "v" prefix semver expects.
func canonical(version string) (string, error) {
	v := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(v) || semver.Canonical(v) != v {
		return "", fmt.Errorf("%q is not a major.minor.patch version", version)
	}

	return v, nil
}

// release drops the pre-release part.
func release(v string) string {
	return strings.TrimSuffix(v, semver.Prerelease(v))
}
