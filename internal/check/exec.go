package check

import (
	"context"
	"os/exec"
	"strings"
)

// runCommand executes a subprocess under the probe timeout and returns its
// trimmed combined output. The caller decides how a failure degrades.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, subprocessTimeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// lookPath reports the resolved path of the first binary found on PATH.
func lookPath(names ...string) string {
	for _, name := range names {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}
