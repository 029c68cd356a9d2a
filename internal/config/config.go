// Package config persists user preferences in ~/.formplay/config.json.
//
// Only presentation state lives here: the theme, the seed to start from and
// the pane widths. The schema and UI schema documents are never written to
// disk; every session starts from a compiled-in seed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	perrors "github.com/zhubert/formplay/internal/errors"
	"github.com/zhubert/formplay/internal/examples"
	"github.com/zhubert/formplay/internal/layout"
)

// Config holds the application configuration
type Config struct {
	Theme   string `json:"theme,omitempty"`   // UI theme name (e.g., "dark-purple", "nord")
	Example string `json:"example,omitempty"` // Seed loaded at startup (e.g., "person")

	// Pane widths in columns. Zero means the layout default.
	LeftWidth  int `json:"left_width,omitempty"`
	RightWidth int `json:"right_width,omitempty"`

	// Chrome overrides the fixed non-pane columns; nil means the default.
	Chrome *layout.Chrome `json:"chrome,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".formplay"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from ~/.formplay/config.json, or returns defaults
// if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("~/.formplay/config.json", err)
	}
	return LoadFile(path)
}

// LoadFile reads the config from path. A missing file yields defaults bound
// to path, so a later Save creates it.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.LeftWidth < 0 || c.RightWidth < 0 {
		return perrors.ConfigInvalid(fmt.Sprintf("pane widths must not be negative (left %d, right %d)", c.LeftWidth, c.RightWidth))
	}
	if ch := c.Chrome; ch != nil {
		if ch.LeftPadding < 0 || ch.RightPadding < 0 || ch.DividerWidth < 0 {
			return perrors.ConfigInvalid("chrome sizes must not be negative")
		}
	}
	if c.Example != "" {
		if _, err := examples.Get(c.Example); err != nil {
			return perrors.ConfigInvalid(fmt.Sprintf("unknown example %q", c.Example))
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return perrors.ConfigSaveFailed("", fmt.Errorf("no config path"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns where Save writes
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath changes where Save writes
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetExample returns the configured seed, or examples.Default
func (c *Config) GetExample() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Example == "" {
		return examples.Default
	}
	return c.Example
}

// SetExample sets the seed loaded at startup
func (c *Config) SetExample(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Example = name
}

// GetWidths returns the saved pane widths, falling back to the layout
// defaults for unset sides
func (c *Config) GetWidths() (left, right int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	left, right = layout.DefaultLeftWidth, layout.DefaultRightWidth
	if c.LeftWidth > 0 {
		left = c.LeftWidth
	}
	if c.RightWidth > 0 {
		right = c.RightWidth
	}
	return left, right
}

// SetWidths records the pane widths
func (c *Config) SetWidths(left, right int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LeftWidth = max(0, left)
	c.RightWidth = max(0, right)
}

// ClearWidths forgets the saved widths so the defaults apply again
func (c *Config) ClearWidths() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LeftWidth = 0
	c.RightWidth = 0
}

// GetChrome returns the configured chrome, or layout.DefaultChrome
func (c *Config) GetChrome() layout.Chrome {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Chrome == nil {
		return layout.DefaultChrome
	}
	return *c.Chrome
}
