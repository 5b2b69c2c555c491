package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up next to the lifelog executable.
const DefaultConfigFile = "lifelog.yaml"

// Config holds all lifelog configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig locates the journal database. An empty or relative Path is
// resolved against the directory of the running executable.
type StorageConfig struct {
	Path       string `yaml:"path"`
	SQLiteFile string `yaml:"sqlite_file"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type DisplayConfig struct {
	Language   string `yaml:"language"`
	JSONIndent string `yaml:"json_indent"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadIfExists loads path when it exists and returns defaults otherwise.
func LoadIfExists(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Display.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("display.language must be \"en\" or \"ja\", got %q", c.Display.Language)
	}
	if c.Storage.SQLiteFile == "" {
		return fmt.Errorf("storage.sqlite_file must not be empty")
	}
	return nil
}

// DatabasePath returns the absolute journal database path, resolving
// relative locations against baseDir.
func (c *Config) DatabasePath(baseDir string) (string, error) {
	dir, err := resolveDir(c.Storage.Path, baseDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.SQLiteFile), nil
}

// LogFilePath returns the log file location, or "" when file logging is off.
func (c *Config) LogFilePath(baseDir string) (string, error) {
	if c.Logging.File == "" {
		return "", nil
	}
	return resolveDir(c.Logging.File, baseDir)
}

func resolveDir(path, baseDir string) (string, error) {
	path, err := expandPath(path)
	if err != nil {
		return "", err
	}
	if path == "" {
		return baseDir, nil
	}
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path), nil
	}
	return path, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
