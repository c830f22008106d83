package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"camctl/internal/source"
)

// EnvLinkedVersion overrides the linked runtime version.
const EnvLinkedVersion = "LIBCAMERA_VERSION"

// pkgConfigModules are queried in order; older installs ship "camera".
var pkgConfigModules = []string{"libcamera", "camera"}

// Env is what linked version discovery reads from the host.
type Env struct {
	Getenv    func(string) string
	PkgConfig func(ctx context.Context, module string) (string, error)
}

// HostEnv reads the process environment and runs pkg-config.
func HostEnv() Env {
	return Env{Getenv: os.Getenv, PkgConfig: pkgConfig}
}

// Linked is a discovered runtime version and where it came from.
type Linked struct {
	Version string
	Origin  string
}

// Linked discovers the runtime version: flag, then LIBCAMERA_VERSION, then
// the config file, then pkg-config. Build metadata is dropped; the rest
// must be a major.minor.patch version.
func (c *Config) Linked(ctx context.Context, flag string, env Env) (Linked, error) {
	candidates := []Linked{
		{Version: flag, Origin: "flag"},
		{Version: getenv(env, EnvLinkedVersion), Origin: "environment " + EnvLinkedVersion},
		{Version: c.LinkedVersion, Origin: "config"},
	}

	for _, l := range candidates {
		if strings.TrimSpace(l.Version) == "" {
			continue
		}

		return normalize(l)
	}

	if env.PkgConfig == nil {
		return Linked{}, fmt.Errorf("linked libcamera version not set (flag, %s or config)", EnvLinkedVersion)
	}

	var errs []string

	for _, module := range pkgConfigModules {
		v, err := env.PkgConfig(ctx, module)
		if err != nil {
			errs = append(errs, err.Error())

			continue
		}

		return normalize(Linked{Version: v, Origin: "pkg-config " + module})
	}

	return Linked{}, fmt.Errorf("linked libcamera version not set and pkg-config failed: %s", strings.Join(errs, "; "))
}

func normalize(l Linked) (Linked, error) {
	v := strings.TrimSpace(l.Version)
	v, _, _ = strings.Cut(v, "+")

	parsed, ok := source.ParseTag("v" + strings.TrimPrefix(v, "v"))
	if !ok {
		return Linked{}, fmt.Errorf("%s: invalid libcamera version %q", l.Origin, l.Version)
	}

	l.Version = parsed

	return l, nil
}

func getenv(env Env, key string) string {
	if env.Getenv == nil {
		return ""
	}

	return env.Getenv(key)
}

func pkgConfig(ctx context.Context, module string) (string, error) {
	cmd := exec.CommandContext(ctx, "pkg-config", "--modversion", module)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pkg-config --modversion %s: %w: %s", module, err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(string(out)), nil
}
