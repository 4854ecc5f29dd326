package clawhome

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Required top-level config keys. Credentials live in the environment, so
// only the provider selection is mandatory.
var RequiredConfigKeys = []string{"provider"}

// Config is a parsed OpenClaw configuration file.
type Config struct {
	Path   string
	Values *viper.Viper
}

// FindConfig returns the first existing config candidate, or "".
func (d Dirs) FindConfig() string {
	for _, p := range d.ConfigCandidates() {
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// LoadConfig parses the config file at path. Format is inferred from the
// extension (yaml, yml, or json). Parse failures keep the underlying
// error, including the parser's location information.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return &Config{Path: path, Values: v}, nil
}

// Empty reports whether the file parsed to no settings at all.
func (c *Config) Empty() bool {
	return len(c.Values.AllKeys()) == 0
}

// MissingRequired returns the required keys absent from the config.
func (c *Config) MissingRequired() []string {
	var missing []string
	for _, key := range RequiredConfigKeys {
		if !c.Values.IsSet(key) || c.Values.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// APIKeyFields returns the config fields that carry embedded provider keys.
// Only field names are reported, never values.
func (c *Config) APIKeyFields() []string {
	var found []string
	if c.Values.GetString("api_key") != "" {
		found = append(found, "api_key")
	}
	for _, provider := range []string{"anthropic", "openai"} {
		if c.Values.GetString(provider+".api_key") != "" {
			found = append(found, provider+".api_key")
		}
	}
	return found
}

// defaultConfig is written by --fix when no config file exists.
var defaultConfig = map[string]any{
	"provider": "anthropic",
	"model":    "claude-3-5-sonnet-20241022",
	"channels": []string{},
	"skills":   []string{},
}

// WriteDefaults replaces the config file contents with the default
// settings, in the format its extension implies.
func (c *Config) WriteDefaults() error {
	var raw []byte
	var err error
	if filepath.Ext(c.Path) == ".json" {
		raw, err = json.MarshalIndent(defaultConfig, "", "  ")
	} else {
		raw, err = yaml.Marshal(defaultConfig)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Path, err)
	}
	return nil
}

// WriteDefaultConfig creates Home/config.yaml with the default settings.
// It refuses to overwrite an existing file, so reruns are safe.
func (d Dirs) WriteDefaultConfig() (string, error) {
	if err := os.MkdirAll(d.Home, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", d.Home, err)
	}
	path := filepath.Join(d.Home, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	raw, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
