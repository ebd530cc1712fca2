package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/fernandezvara/passadvisor"
	"github.com/fernandezvara/passadvisor/pkg/debug"
)

const (
	// DefaultEnvFile is loaded when PASSADVISOR_ENV_FILE is unset
	DefaultEnvFile = ".env"

	OutputText = "text"
	OutputJSON = "json"
)

// Environment variables read by Load
const (
	EnvFile       = "PASSADVISOR_ENV_FILE"
	EnvName       = "PASSADVISOR_NAME"
	EnvBirthYear  = "PASSADVISOR_BIRTH_YEAR"
	EnvMobile     = "PASSADVISOR_MOBILE"
	EnvFavWord    = "PASSADVISOR_FAV_WORD"
	EnvDictionary = "PASSADVISOR_DICTIONARY"
	EnvOutput     = "PASSADVISOR_OUTPUT"
	EnvMinLevel   = "PASSADVISOR_MIN_LEVEL"
	EnvLength     = "PASSADVISOR_LENGTH"
)

// ErrInvalidConfig wraps every configuration value error
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the CLI defaults. Command-line flags override these values.
type Config struct {
	Context        passadvisor.ContextInfo
	DictionaryPath string
	Output         string
	MinLevel       passadvisor.StrengthLevel
	Length         int
}

// Load reads the optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv(EnvFile)
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		debug.Debug("No env file at %s, using environment only", envFile)
	} else {
		debug.Reinitialize()
		debug.Info("Loaded environment from %s", envFile)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Context: passadvisor.ContextInfo{
			Name:      os.Getenv(EnvName),
			BirthYear: os.Getenv(EnvBirthYear),
			Mobile:    os.Getenv(EnvMobile),
			FavWord:   os.Getenv(EnvFavWord),
		},
		DictionaryPath: os.Getenv(EnvDictionary),
		Output:         OutputText,
		MinLevel:       passadvisor.LevelNone,
		Length:         passadvisor.DefaultLength,
	}

	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		out, err := ParseOutput(v)
		if err != nil {
			return nil, err
		}
		cfg.Output = out
	}

	if v := strings.TrimSpace(os.Getenv(EnvMinLevel)); v != "" {
		level, err := passadvisor.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvMinLevel, err)
		}
		cfg.MinLevel = level
	}

	if v := strings.TrimSpace(os.Getenv(EnvLength)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLength, err)
		}
		if n < passadvisor.MinGenerateLength {
			return nil, fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalidConfig, EnvLength, passadvisor.MinGenerateLength, n)
		}
		cfg.Length = n
	}

	debug.Debug("Config: output=%s min-level=%s length=%d custom-dictionary=%v context-fields=%v",
		cfg.Output, cfg.MinLevel, cfg.Length, cfg.DictionaryPath != "", !cfg.Context.IsZero())
	return cfg, nil
}

// ParseOutput validates an output format name.
func ParseOutput(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, s)
	}
}

// LoadDictionary reads the custom known-weak list, if one is configured.
func (c *Config) LoadDictionary() (string, error) {
	if c.DictionaryPath == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.DictionaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to read dictionary %s: %w", c.DictionaryPath, err)
	}
	debug.Info("Loaded custom dictionary from %s", c.DictionaryPath)
	return string(data), nil
}

// Analyzer builds the analyzer for this configuration.
func (c *Config) Analyzer() (*passadvisor.Analyzer, error) {
	dict, err := c.LoadDictionary()
	if err != nil {
		return nil, err
	}
	return passadvisor.NewAnalyzerWithDict(dict), nil
}
