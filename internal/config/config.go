package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It controls browsing behavior and the TUI theme.
type Config struct {
	Settings struct {
		ReuseView  bool `yaml:"reuse_view"`  // Navigate in place instead of opening a new view
		ShowHidden bool `yaml:"show_hidden"` // Include dotfiles in listings
		Watch      bool `yaml:"watch"`       // Auto-refresh when the directory changes externally
		Debug      bool `yaml:"debug"`       // Debug-level logging
	} `yaml:"settings"`
	Directories struct {
		Default string `yaml:"default"` // Directory opened when none is given
	} `yaml:"directories"`
	Theme struct {
		Name      string `yaml:"name"`      // Theme name (default, dark, light)
		Directory string `yaml:"directory"` // Color for directory entries
		File      string `yaml:"file"`      // Color for file entries
		Marked    string `yaml:"marked"`    // Color for marked entry lines
		Cursor    string `yaml:"cursor"`    // Color for the cursor line
		Error     string `yaml:"error"`     // Color for error messages
		Header    string `yaml:"header"`    // Color for the path header
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/dired/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "dired", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.Settings.ReuseView = tempCfg.Settings.ReuseView
	cfg.Settings.ShowHidden = tempCfg.Settings.ShowHidden
	cfg.Settings.Watch = tempCfg.Settings.Watch
	cfg.Settings.Debug = tempCfg.Settings.Debug

	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}
	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}

	// Explicit colors override the named theme
	overrides := map[*string]string{
		&cfg.Theme.Directory: tempCfg.Theme.Directory,
		&cfg.Theme.File:      tempCfg.Theme.File,
		&cfg.Theme.Marked:    tempCfg.Theme.Marked,
		&cfg.Theme.Cursor:    tempCfg.Theme.Cursor,
		&cfg.Theme.Error:     tempCfg.Theme.Error,
		&cfg.Theme.Header:    tempCfg.Theme.Header,
	}
	for dst, v := range overrides {
		if v != "" {
			*dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Settings.ReuseView = false // New view per directory by default
	cfg.Settings.ShowHidden = false
	cfg.Settings.Watch = true
	cfg.Settings.Debug = false

	cfg.Directories.Default = "."

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Theme.Name != "" {
		valid := false
		for _, name := range ListThemes() {
			if c.Theme.Name == name {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid theme: %s", c.Theme.Name)
		}
	}

	if c.Directories.Default != "" && c.Directories.Default != "." {
		info, err := os.Stat(c.Directories.Default)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("default directory does not exist: %s", c.Directories.Default)
			}
			return fmt.Errorf("error accessing default directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("default directory is not a directory: %s", c.Directories.Default)
		}
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"directory": "39",  // Blue
			"file":      "252", // Near-white
			"marked":    "220", // Yellow
			"cursor":    "213", // Purple
			"error":     "196", // Red
			"header":    "245", // Grey
		},
		"dark": {
			"directory": "33",  // Dark Blue
			"file":      "248", // Grey
			"marked":    "214", // Dark Yellow
			"cursor":    "105", // Dark Purple
			"error":     "160", // Dark Red
			"header":    "241", // Medium Grey
		},
		"light": {
			"directory": "117", // Light Blue
			"file":      "238", // Dark Grey
			"marked":    "178", // Olive
			"cursor":    "135", // Light Purple
			"error":     "210", // Light Red
			"header":    "247", // Light Grey
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Directory = theme["directory"]
	c.Theme.File = theme["file"]
	c.Theme.Marked = theme["marked"]
	c.Theme.Cursor = theme["cursor"]
	c.Theme.Error = theme["error"]
	c.Theme.Header = theme["header"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light"}
}
