package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// configDir is the configuration directory path
	// Can be set via SetConfigDir before loading config
	configDir     string
	configDirInit bool
)

// SetConfigDir sets a custom configuration directory
// Must be called before any config loading functions
func SetConfigDir(dir string) {
	configDir = dir
	configDirInit = true
}

// GetConfigDir returns the configuration directory
// Priority: 1. Manually set via SetConfigDir, 2. ./config in current directory
func GetConfigDir() string {
	if !configDirInit {
		cwd, err := os.Getwd()
		if err == nil {
			configDir = filepath.Join(cwd, "config")
		}
		configDirInit = true
	}
	return configDir
}

// Config application configuration structure
type Config struct {
	PokeAPI PokeAPIConfig `yaml:"pokeapi"`
	Tools   ToolsConfig   `yaml:"tools"`
	Log     LogConfig     `yaml:"log"`
}

// PokeAPIConfig upstream service configuration
type PokeAPIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// ToolsConfig tool behavior configuration
type ToolsConfig struct {
	DefaultLimit  int `yaml:"default_limit"`
	RosterWorkers int `yaml:"roster_workers"`
	RandomMaxID   int `yaml:"random_max_id"`
}

// LogConfig logging configuration
type LogConfig struct {
	Level   string `yaml:"level"`
	MaxDays int    `yaml:"max_days"`
	Console bool   `yaml:"console"`
}

// MaxRosterWorkers caps tools.roster_workers.
const MaxRosterWorkers = 32

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		PokeAPI: PokeAPIConfig{
			BaseURL:        "https://pokeapi.co/api/v2",
			TimeoutSeconds: 15,
			UserAgent:      "pokemate/0.1",
		},
		Tools: ToolsConfig{
			DefaultLimit:  10,
			RosterWorkers: 5,
			RandomMaxID:   1010,
		},
		Log: LogConfig{
			Level:   "info",
			MaxDays: 7,
			Console: false,
		},
	}
}

// ConfigDir returns the configuration directory path
func ConfigDir() (string, error) {
	dir := GetConfigDir()
	if dir == "" {
		return "", fmt.Errorf("failed to determine config directory")
	}
	return dir, nil
}

// LogDir returns the log directory path
func LogDir() string {
	dir := GetConfigDir()
	if dir == "" {
		return "logs"
	}
	return filepath.Join(dir, "logs")
}

// ConfigPath returns the configuration file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads configuration from file, creating a default one on first use
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig() // Use default values as base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	content := "# pokemate configuration file\n\n" + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	base := strings.TrimSpace(c.PokeAPI.BaseURL)
	if base == "" {
		return fmt.Errorf("config error: pokeapi.base_url cannot be empty")
	}
	parsed, err := url.Parse(base)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("config error: pokeapi.base_url must be an http(s) url")
	}
	if c.PokeAPI.TimeoutSeconds <= 0 {
		return fmt.Errorf("config error: pokeapi.timeout_seconds must be greater than 0")
	}

	if c.Tools.DefaultLimit < 0 {
		return fmt.Errorf("config error: tools.default_limit cannot be negative")
	}
	if c.Tools.RosterWorkers <= 0 || c.Tools.RosterWorkers > MaxRosterWorkers {
		return fmt.Errorf("config error: tools.roster_workers must be between 1 and %d", MaxRosterWorkers)
	}
	if c.Tools.RandomMaxID <= 0 {
		return fmt.Errorf("config error: tools.random_max_id must be greater than 0")
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: log.level must be one of debug, info, warn, error")
	}
	if c.Log.MaxDays < 0 {
		return fmt.Errorf("config error: log.max_days cannot be negative")
	}

	return nil
}

// String returns string representation of config
func (c *Config) String() string {
	return fmt.Sprintf(`pokemate configuration:
  PokeAPI:
    Base URL: %s
    Timeout Seconds: %d
    User Agent: %s
  Tools:
    Default Limit: %d
    Roster Workers: %d
    Random Max ID: %d
  Log:
    Level: %s
    Max Days: %d
    Console: %v`,
		c.PokeAPI.BaseURL,
		c.PokeAPI.TimeoutSeconds,
		c.PokeAPI.UserAgent,
		c.Tools.DefaultLimit,
		c.Tools.RosterWorkers,
		c.Tools.RandomMaxID,
		c.Log.Level,
		c.Log.MaxDays,
		c.Log.Console,
	)
}
