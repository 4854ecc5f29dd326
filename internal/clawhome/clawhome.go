// Package clawhome locates the OpenClaw installation on disk: the
// application directory, its expected subdirectories, configuration file
// candidates, and .env files.
package clawhome

import (
	"os"
	"path/filepath"
	"runtime"
)

// Subdirectories expected inside the application directory.
var ExpectedDirs = []string{"skills", "channels", "workspaces", "logs"}

// Dirs describes where OpenClaw keeps its state for the current user.
type Dirs struct {
	// Home is the primary application directory (~/.openclaw). It may not
	// exist yet on a fresh installation.
	Home string
	// Fallback is the OS-specific alternate search location. Checks consult
	// it read-only; fixes always write under Home.
	Fallback string
}

// Discover resolves the application directories for the current user.
func Discover() Dirs {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	d := Dirs{Home: filepath.Join(home, ".openclaw")}
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			d.Fallback = filepath.Join(local, "openclaw")
		} else {
			d.Fallback = filepath.Join(home, "AppData", "Local", "openclaw")
		}
	} else {
		d.Fallback = filepath.Join(home, ".config", "openclaw")
	}
	return d
}

// Existing returns the first of Home, Fallback that exists on disk, or ""
// when neither does.
func (d Dirs) Existing() string {
	for _, dir := range []string{d.Home, d.Fallback} {
		if dir == "" {
			continue
		}
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir
		}
	}
	return ""
}

// SearchPath lists the directories checks should consult, existing or not.
func (d Dirs) SearchPath() []string {
	out := []string{d.Home}
	if d.Fallback != "" && d.Fallback != d.Home {
		out = append(out, d.Fallback)
	}
	return out
}

// ConfigCandidates returns config file paths in resolution order: yaml wins
// over yml wins over json, primary dir wins over fallback.
func (d Dirs) ConfigCandidates() []string {
	var out []string
	for _, dir := range d.SearchPath() {
		for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
			out = append(out, filepath.Join(dir, name))
		}
	}
	return out
}

// EnvFileCandidates returns .env file paths in resolution order. The first
// candidate (whether or not it exists) is where --fix writes new keys.
func (d Dirs) EnvFileCandidates() []string {
	out := []string{
		filepath.Join(d.Home, ".env"),
		filepath.Join(d.Home, "env"),
	}
	if d.Fallback != "" && d.Fallback != d.Home {
		out = append(out, filepath.Join(d.Fallback, ".env"))
	}
	if cwd, err := os.Getwd(); err == nil {
		out = append(out, filepath.Join(cwd, ".env"))
	}
	return out
}

// LogDirCandidates returns directories to search for log files.
func (d Dirs) LogDirCandidates() []string {
	out := []string{
		filepath.Join(d.Home, "logs"),
		filepath.Join(d.Home, "log"),
	}
	if d.Fallback != "" && d.Fallback != d.Home {
		out = append(out, filepath.Join(d.Fallback, "logs"))
	}
	return out
}

// Writable reports whether the directory can be written to, probed the same
// way the engine will use it: by creating and removing a scratch file.
func Writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".doctor_probe_*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
