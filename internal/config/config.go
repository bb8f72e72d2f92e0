package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvRoot   = "EZ_NB_ROOT"
	EnvEditor = "EDITOR"
	EnvLogDir = "NOTEBOOK_LOG_DIR"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the resolved application configuration
type Config struct {
	Root       string
	Editor     string
	TaskIgnore []string
	LogDir     string
	Color      string
}

// Settings represents the config file structure
type Settings struct {
	Root       string   `yaml:"root,omitempty"`
	Editor     string   `yaml:"editor,omitempty"`
	TaskIgnore []string `yaml:"task_ignore,omitempty"`
	LogDir     string   `yaml:"log_dir,omitempty"`
	Color      string   `yaml:"color,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Root   string
	Editor string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (Config, error) {
	cfg := Config{
		Editor: "nvim",
		Color:  ColorAuto,
	}

	defaultRoot, err := DefaultRoot()
	if err != nil {
		return Config{}, err
	}
	cfg.Root = defaultRoot

	if cacheDir, err := os.UserCacheDir(); err == nil {
		cfg.LogDir = filepath.Join(cacheDir, "notebook")
	}

	// Config file for base values
	if configPath, err := Path(); err == nil {
		settings, err := loadConfigFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", configPath, err)
		}
		if settings != nil {
			if settings.Root != "" {
				cfg.Root = expandPath(settings.Root)
			}
			if settings.Editor != "" {
				cfg.Editor = settings.Editor
			}
			if len(settings.TaskIgnore) > 0 {
				cfg.TaskIgnore = settings.TaskIgnore
			}
			if settings.LogDir != "" {
				cfg.LogDir = expandPath(settings.LogDir)
			}
			if settings.Color != "" {
				cfg.Color = settings.Color
			}
		}
	}

	// Environment variables override config file
	if env := os.Getenv(EnvRoot); env != "" {
		cfg.Root = expandPath(env)
	}
	if env := strings.TrimSpace(os.Getenv(EnvEditor)); env != "" {
		cfg.Editor = env
	}
	if env := os.Getenv(EnvLogDir); env != "" {
		cfg.LogDir = expandPath(env)
	}

	// CLI flags override everything
	if flags.Root != "" {
		cfg.Root = expandPath(flags.Root)
	}
	if strings.TrimSpace(flags.Editor) != "" {
		cfg.Editor = flags.Editor
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("invalid color mode %q (want auto, always or never)", cfg.Color)
	}

	return cfg, nil
}

// DefaultRoot returns the default notebook directory
func DefaultRoot() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "notebook"), nil
}

// Path returns the path to the configuration file
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "notebook", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureRoot creates the notebook directory if it doesn't exist
func (c Config) EnsureRoot() error {
	return os.MkdirAll(c.Root, 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		Root:   "~/notebook",
		Editor: "nvim",
		Color:  ColorAuto,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
