package deskctl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultProfile = "default"

// Config is the on-disk CLI configuration: named profiles, one per server
// or identity.
type Config struct {
	Current  string              `yaml:"current,omitempty"`
	Profiles map[string]*Profile `yaml:"profiles,omitempty"`
}

// Profile is a server and the identity used against it.
type Profile struct {
	Server   string `yaml:"server"`
	Token    string `yaml:"token,omitempty"`
	Subject  string `yaml:"subject,omitempty"`
	Timezone string `yaml:"timezone,omitempty"` // calendar for expiration day counts
}

// DefaultConfigPath is ~/.config/deskctl/config.yaml on Linux.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "deskctl", "config.yaml"), nil
}

// LoadConfig reads path. A missing file yields an empty config.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{Profiles: map[string]*Profile{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]*Profile{}
	}
	return &cfg, nil
}

// Save writes the config with owner-only permissions since it holds tokens.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Profile returns the named profile, creating it if needed. An empty name
// selects the current profile.
func (c *Config) Profile(name string) *Profile {
	if name == "" {
		name = c.Current
	}
	if name == "" {
		name = defaultProfile
	}
	p, ok := c.Profiles[name]
	if !ok {
		p = &Profile{}
		c.Profiles[name] = p
	}
	return p
}
