package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"camctl/internal/resolve"
	"camctl/internal/schema"
)

// DefaultFile is the config file name looked up by Find.
const DefaultFile = "camctl.jsonc"

// Config holds the generator's build inputs. Relative paths resolve against
// Root, the directory of the config file.
type Config struct {
	// Module is the import path prefix of the generated packages.
	Module string `json:"module"`
	// SchemaDir is the snapshot store, one directory per version.
	SchemaDir string `json:"schema_dir"`
	// LinkedVersion pins the runtime version when neither flag nor
	// environment set it.
	LinkedVersion string `json:"linked_version,omitempty"`
	// Mode is the resolution mode, "exact" or "caret".
	Mode string `json:"mode"`
	// Outputs are the generated catalogue package directories.
	Outputs Pair `json:"outputs"`
	// Linkage are the generated runtime id package directories.
	Linkage Pair `json:"linkage"`
	// Headers are the runtime C headers the linkage packages come from.
	Headers Pair `json:"headers"`
	// VerifyLinkage makes generation fail for controls the runtime does
	// not declare.
	VerifyLinkage bool `json:"verify_linkage"`

	Root string `json:"-"`
}

// Pair holds one setting per category.
type Pair struct {
	Controls   string `json:"controls"`
	Properties string `json:"properties"`
}

// Of returns the setting of category c.
func (p Pair) Of(c schema.Category) string {
	if c == schema.Properties {
		return p.Properties
	}

	return p.Controls
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Module:    "camctl",
		SchemaDir: "versioned_files",
		Mode:      resolve.Exact.String(),
		Outputs: Pair{
			Controls:   "controls",
			Properties: "properties",
		},
		Linkage: Pair{
			Controls:   "native/controlid",
			Properties: "native/propertyid",
		},
		Headers: Pair{
			Controls:   "native/include/control_ids.h",
			Properties: "native/include/property_ids.h",
		},
		VerifyLinkage: true,
		Root:          ".",
	}
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result over Default. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads a JSONC config file. Root becomes the file's directory.
func Load(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	cfg.Root = filepath.Dir(file)

	return cfg, nil
}

// Find looks for DefaultFile in start and its parents, so go:generate can
// run from a generated package directory.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, DefaultFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in %s or any parent directory", DefaultFile, start)
		}

		dir = parent
	}
}

// Validate checks the fields every command relies on.
func (c *Config) Validate() error {
	if _, err := resolve.ParseMode(c.Mode); err != nil {
		return err
	}

	fields := []struct{ name, value string }{
		{"module", c.Module},
		{"schema_dir", c.SchemaDir},
		{"outputs.controls", c.Outputs.Controls},
		{"outputs.properties", c.Outputs.Properties},
		{"linkage.controls", c.Linkage.Controls},
		{"linkage.properties", c.Linkage.Properties},
		{"headers.controls", c.Headers.Controls},
		{"headers.properties", c.Headers.Properties},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("config field %s is empty", f.name)
		}
	}

	return nil
}

// ResolveMode returns the parsed resolution mode.
func (c *Config) ResolveMode() (resolve.Mode, error) {
	return resolve.ParseMode(c.Mode)
}

// Path resolves a configured path against Root.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.Root, filepath.FromSlash(p))
}

// ImportPath is the import path of a package directory below Root.
func (c *Config) ImportPath(dir string) string {
	return path.Join(c.Module, filepath.ToSlash(dir))
}
