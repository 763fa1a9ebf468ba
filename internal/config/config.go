package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEnvFile        = ".env"
	defaultLogLevel       = "info"
	defaultTrayClickRPS   = 2.0
	defaultTrayClickBurst = 3
)

// Colour modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	WeekStart      time.Weekday
	ColorMode      string
	ShowTitle      bool
	ShowLegend     bool
	HighlightToday bool
	LogLevel       string
	TrayClickRPS   float64
	TrayClickBurst int
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	WeekStart      string   `yaml:"week_start"`
	Color          string   `yaml:"color"`
	Title          *bool    `yaml:"title"`
	Legend         *bool    `yaml:"legend"`
	HighlightToday *bool    `yaml:"highlight_today"`
	LogLevel       string   `yaml:"log_level"`
	Tray           yamlTray `yaml:"tray"`
}

// yamlTray represents the tray section in YAML.
type yamlTray struct {
	ClickRPS   *float64 `yaml:"click_rps"`
	ClickBurst *int     `yaml:"click_burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	// EnvFile names a dotenv file that must exist. When empty, ".env" in the
	// working directory is loaded if present.
	EnvFile   string
	WeekStart *string
	Color     *string
	LogLevel  *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if err := loadDotEnv(overrides); err != nil {
		return Config{}, err
	}

	// Environment first so the YAML file can override it.
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// UseColor reports whether ANSI colours should be emitted for an output that
// is (or is not) a terminal.
func (c Config) UseColor(isTerminal bool) bool {
	switch c.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		WeekStart:      time.Sunday,
		ColorMode:      ColorAuto,
		ShowTitle:      true,
		ShowLegend:     true,
		HighlightToday: true,
		LogLevel:       defaultLogLevel,
		TrayClickRPS:   defaultTrayClickRPS,
		TrayClickBurst: defaultTrayClickBurst,
	}
}

// loadDotEnv populates the environment from a dotenv file without
// overriding variables that are already set.
func loadDotEnv(overrides *CLIOverrides) error {
	if overrides != nil && overrides.EnvFile != "" {
		if err := godotenv.Load(overrides.EnvFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.WeekStart != "" {
		wd, err := ParseWeekStart(yamlCfg.WeekStart)
		if err != nil {
			return fmt.Errorf("week_start: %w", err)
		}
		cfg.WeekStart = wd
	}

	if yamlCfg.Color != "" {
		cfg.ColorMode = strings.ToLower(strings.TrimSpace(yamlCfg.Color))
	}

	if yamlCfg.Title != nil {
		cfg.ShowTitle = *yamlCfg.Title
	}

	if yamlCfg.Legend != nil {
		cfg.ShowLegend = *yamlCfg.Legend
	}

	if yamlCfg.HighlightToday != nil {
		cfg.HighlightToday = *yamlCfg.HighlightToday
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.Tray.ClickRPS != nil {
		cfg.TrayClickRPS = *yamlCfg.Tray.ClickRPS
	}

	if yamlCfg.Tray.ClickBurst != nil {
		cfg.TrayClickBurst = *yamlCfg.Tray.ClickBurst
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if raw := strings.TrimSpace(os.Getenv("KRCAL_WEEK_START")); raw != "" {
		wd, err := ParseWeekStart(raw)
		if err != nil {
			return fmt.Errorf("KRCAL_WEEK_START: %w", err)
		}
		cfg.WeekStart = wd
	}

	if color := strings.TrimSpace(os.Getenv("KRCAL_COLOR")); color != "" {
		cfg.ColorMode = strings.ToLower(color)
	}

	if level := strings.TrimSpace(os.Getenv("KRCAL_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if rps := strings.TrimSpace(os.Getenv("KRCAL_TRAY_CLICK_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.TrayClickRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("KRCAL_TRAY_CLICK_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.TrayClickBurst = value
		}
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.WeekStart != nil && *overrides.WeekStart != "" {
		wd, err := ParseWeekStart(*overrides.WeekStart)
		if err != nil {
			return fmt.Errorf("parse week start: %w", err)
		}
		cfg.WeekStart = wd
	}

	if overrides.Color != nil && *overrides.Color != "" {
		cfg.ColorMode = strings.ToLower(strings.TrimSpace(*overrides.Color))
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	switch cfg.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", cfg.ColorMode)
	}
	if cfg.TrayClickRPS < 0 {
		return fmt.Errorf("KRCAL_TRAY_CLICK_RPS must be >= 0")
	}
	if cfg.TrayClickBurst < 0 {
		return fmt.Errorf("KRCAL_TRAY_CLICK_BURST must be >= 0")
	}
	return nil
}

// ParseWeekStart parses the first day of the week; only Sunday and Monday
// are accepted.
func ParseWeekStart(raw string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("invalid week start %q (want sunday or monday)", raw)
	}
}
