// Package source retrieves raw schema documents per upstream release.
//
// A Source lists releases (git tags) and the schema files each release
// carries. Load walks the releases, keeps those tagged v<semver>, parses
// every control_ids*.yaml and property_ids*.yaml document and returns one
// Snapshot per version. Store and DirSource persist and read back the
// snapshot store used by the generator at build time:
//
//	versioned_files/
//	  0.4.0/control_ids_core.yaml
//	  0.4.0/property_ids_core.yaml
//	  0.5.2/...
package source
