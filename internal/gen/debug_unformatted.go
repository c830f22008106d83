package gen

import (
	"os"
	"path/filepath"
	"strings"
)

const debugSuffix = ".unformatted.go"

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Keep it a .go file so editors can syntax highlight, but exclude it from
	// every build so the package still compiles next to it.
	lines := strings.Split(string(content), "\n")
	kept := []string{"//go:build ignore", ""}

	for _, l := range lines {
		if !strings.HasPrefix(l, "//go:build ") {
			kept = append(kept, l)
		}
	}

	debugName := strings.TrimSuffix(filename, ".go") + debugSuffix

	return os.WriteFile(filepath.Join(outDir, debugName), []byte(strings.Join(kept, "\n")), filePerm)
}
