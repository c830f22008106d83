package source

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// runGit executes git against dir and returns stdout. Stderr is captured
// and included in the error on failure.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)

	var stdout, stderr bytes.Buffer

	command := exec.CommandContext(ctx, "git", fullArgs...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("git %s in %s: %w (stderr: %s)",
			strings.Join(args, " "), dir, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
