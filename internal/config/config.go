package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	Log      LogConfig      `toml:"log"`
	Notify   NotifyConfig   `toml:"notify"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	// Path is the log file, opened in append mode. Empty disables file logging.
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// NotifyConfig selects the notification backend
type NotifyConfig struct {
	Backend string `toml:"backend"`
}

// ScheduleConfig holds schedule-related configuration
type ScheduleConfig struct {
	// DefaultPriority prefills the priority field of the add form.
	DefaultPriority string `toml:"default_priority"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Log: LogConfig{
			Path:  filepath.Join(homeDir, ".config", "schedule-tui", "schedule.log"),
			Level: "info",
		},
		Schedule: ScheduleConfig{
			DefaultPriority: "MEDIUM",
		},
	}
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "schedule-tui", "config.toml")
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// No config file, return defaults
		return cfg, nil
	}

	// Read and parse config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Expand home directory in paths
	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home dir: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "schedule-tui")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.toml")
	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
