package check

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Okediya/openclaw-doctor/internal/clawhome"
)

// Probe is a single independent health check. Run must never panic or
// return an error: missing binaries, unreadable files, and unreachable
// hosts degrade to a warn/fail Result with guidance.
type Probe interface {
	// ID is the stable identifier used on the command line.
	ID() string
	// Name is the human-readable display name.
	Name() string
	Description() string
	Run(ctx context.Context, env *Env) Result
}

// Fixable probes carry an idempotent remedy, applied only under --fix.
type Fixable interface {
	Probe
	Fix(ctx context.Context, env *Env) error
}

// Env gives probes read access to the ambient environment and, under --fix,
// to the interactive prompt. It is shared across probes but never mutated by
// them.
type Env struct {
	Dirs    clawhome.Dirs
	EnvVars *clawhome.EnvSource
	HTTP    *http.Client
	Log     zerolog.Logger
	Verbose bool

	// Stdin/Stdout back the interactive fix prompt.
	Stdin  io.Reader
	Stdout io.Writer

	stdin *bufio.Reader
}

// NewEnv builds the default probe environment.
func NewEnv(log zerolog.Logger, verbose bool) *Env {
	dirs := clawhome.Discover()
	return &Env{
		Dirs:    dirs,
		EnvVars: dirs.LoadEnv(),
		HTTP:    &http.Client{Timeout: networkTimeout},
		Log:     log,
		Verbose: verbose,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}
}

const (
	// subprocessTimeout bounds every external command a probe runs.
	subprocessTimeout = 10 * time.Second
	// networkTimeout bounds each endpoint probe.
	networkTimeout = 5 * time.Second
)

// ReadLine reads one trimmed line from the prompt input. The reader is
// shared across calls so consecutive prompts don't lose buffered input.
func (e *Env) ReadLine() (string, error) {
	if e.stdin == nil {
		e.stdin = bufio.NewReader(e.Stdin)
	}
	line, err := e.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}
