package check

import (
	"fmt"
	"strconv"
	"strings"
)

// promptSelect shows a numbered list and returns the chosen option. An
// empty answer selects the first entry.
func promptSelect(env *Env, label string, options []string) (string, error) {
	fmt.Fprintf(env.Stdout, "%s:\n", label)
	for i, opt := range options {
		fmt.Fprintf(env.Stdout, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(env.Stdout, "Select [1-%d] (default 1): ", len(options))

	line, err := env.ReadLine()
	if err != nil {
		return "", fmt.Errorf("read selection: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return options[0], nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return "", fmt.Errorf("invalid selection %q", line)
	}
	return options[n-1], nil
}
