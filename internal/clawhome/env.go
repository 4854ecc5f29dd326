package clawhome

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/subosito/gotenv"
)

// EnvSource answers environment lookups with OS variables taking priority
// over values read from .env files.
type EnvSource struct {
	fileVars map[string]string
	// FilePath is the .env file the variables came from, "" when none found.
	FilePath string
}

// LoadEnv reads the first existing .env candidate. A missing or unreadable
// file is not an error; lookups then fall through to the OS environment.
func (d Dirs) LoadEnv() *EnvSource {
	for _, p := range d.EnvFileCandidates() {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		vars, err := gotenv.StrictParse(f)
		f.Close()
		if err != nil {
			continue
		}
		return &EnvSource{fileVars: vars, FilePath: p}
	}
	return &EnvSource{}
}

// Get returns the value for key, OS environment first.
func (e *EnvSource) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return e.fileVars[key]
}

// InFile reports whether key was read from the .env file (as opposed to the
// OS environment).
func (e *EnvSource) InFile(key string) bool {
	_, ok := e.fileVars[key]
	return ok
}

// AppendEnvKey appends KEY=value to the env file at path, creating the file
// and its directory as needed. If the key is already present the file is
// left untouched.
func AppendEnvKey(path, key, value string) error {
	if raw, err := os.ReadFile(path); err == nil {
		if vars, err := gotenv.StrictParse(strings.NewReader(string(raw))); err == nil {
			if _, ok := vars[key]; ok {
				return nil
			}
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s=%s\n", key, value); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
