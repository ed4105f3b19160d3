package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/homes/internal/homes"
)

// Config holds the settings the homes client needs at startup.
type Config struct {
	APIBase  string
	LogFile  string
	LogLevel string
}

const (
	envPrefix         = "homes"
	defaultConfigPath = "~/.config/homes/config.toml"
	defaultLogFile    = "~/.local/state/homes/homes.log"
	defaultLogLevel   = "info"
)

// environment mirrors Config for HOMES_* overrides. Unset variables stay empty.
type environment struct {
	APIBase  string `envconfig:"API_BASE"`
	LogFile  string `envconfig:"LOG_FILE"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// Load reads the TOML config at path (or the default location), then applies
// HOMES_* environment overrides. A missing file yields defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBase: homes.DefaultAPIBase, LogFile: defaultLogFile, LogLevel: defaultLogLevel}

	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	cfg.merge(raw.APIBase, raw.LogFile, raw.LogLevel)

	var env environment
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	cfg.merge(env.APIBase, env.LogFile, env.LogLevel)

	cfg.LogFile = mustExpand(cfg.LogFile)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return cfg, nil
}

type fileConfig struct {
	APIBase  string `toml:"api_base"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

func readFile(path string) (fileConfig, error) {
	var raw fileConfig

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return raw, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return raw, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return raw, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

// merge overwrites fields with any non-blank values, trimmed.
func (c *Config) merge(apiBase, logFile, logLevel string) {
	if v := strings.TrimSpace(apiBase); v != "" {
		c.APIBase = v
	}
	if v := strings.TrimSpace(logFile); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(logLevel); v != "" {
		c.LogLevel = v
	}
}

// LoadEnvFile exports the variables in a dotenv file. Variables already set in
// the process environment win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// PrefsPath returns the preferences file that sits next to the default config.
func PrefsPath() string {
	return mustExpand("~/.config/homes/prefs.toml")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
