package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file location configuration.
type Paths struct {
	TargetDir   string `toml:"target_dir"`
	LogDir      string `toml:"log_dir"`
	JournalFile string `toml:"journal_file"`
}

// Category maps a named bucket to the file extensions routed into it.
// Declaration order in the config file is significant: classification
// scans categories in order and the first match wins.
type Category struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
}

// Organize contains knobs for a single organize run.
type Organize struct {
	LargeFileThresholdMB int64    `toml:"large_file_threshold_mb"`
	Ignore               []string `toml:"ignore"`
}

// Logging contains configuration for log output and rotation.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	MaxLogMB      int    `toml:"max_log_mb"`
	LogBackups    int    `toml:"log_backups"`
	RetentionDays int    `toml:"retention_days"`
}

// Config encapsulates all configuration values for tidy.
//
// Configuration sections by subsystem:
//   - Paths: target directory, log directory, and action journal location
//   - Categories: ordered extension-to-category routing table
//   - Organize: large-file threshold and ignored filenames
//   - Logging: log format, level, rotation, and retention
type Config struct {
	Paths      Paths      `toml:"paths"`
	Categories []Category `toml:"categories"`
	Organize   Organize   `toml:"organize"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/tidy/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized. When no config file exists the repository
// defaults are used; the boolean reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file not found: %s", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("tidy.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCategories()
	c.normalizeOrganize()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	// Precedence for the target directory: config file, then the
	// TIDY_TARGET_DIR environment variable, then the built-in default.
	if strings.TrimSpace(c.Paths.TargetDir) == "" {
		if value := strings.TrimSpace(os.Getenv("TIDY_TARGET_DIR")); value != "" {
			c.Paths.TargetDir = value
		} else {
			c.Paths.TargetDir = defaultTargetDir
		}
	}
	if c.Paths.TargetDir, err = expandPath(c.Paths.TargetDir); err != nil {
		return fmt.Errorf("paths.target_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.JournalFile) == "" {
		c.Paths.JournalFile = defaultJournalFile
	}
	if c.Paths.JournalFile, err = expandPath(c.Paths.JournalFile); err != nil {
		return fmt.Errorf("paths.journal_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeCategories() {
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
	}
	for i := range c.Categories {
		c.Categories[i].Name = strings.TrimSpace(c.Categories[i].Name)
		exts := make([]string, 0, len(c.Categories[i].Extensions))
		for _, ext := range c.Categories[i].Extensions {
			normalized := strings.ToLower(strings.TrimSpace(ext))
			if normalized == "" {
				continue
			}
			exts = append(exts, normalized)
		}
		c.Categories[i].Extensions = exts
	}
}

func (c *Config) normalizeOrganize() {
	if c.Organize.LargeFileThresholdMB < 0 {
		c.Organize.LargeFileThresholdMB = 0
	}
	if c.Organize.Ignore == nil {
		c.Organize.Ignore = defaultIgnore()
	}
	names := make([]string, 0, len(c.Organize.Ignore))
	for _, name := range c.Organize.Ignore {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	c.Organize.Ignore = names
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxLogMB <= 0 {
		c.Logging.MaxLogMB = defaultMaxLogMB
	}
	if c.Logging.LogBackups < 0 {
		c.Logging.LogBackups = defaultLogBackups
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}

// LogFile returns the path of the active log file inside the log directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.Paths.LogDir, "tidy.log")
}

// EnsureDirectories creates the directories tidy writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, filepath.Dir(c.Paths.JournalFile)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
