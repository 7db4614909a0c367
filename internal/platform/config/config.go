package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultUserAgent is a realistic desktop browser string; some sites
	// refuse obvious bot agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "INFO"
)

var (
	errInvalidTimeout = errors.New("config: timeout must be positive")
	errEmptyUserAgent = errors.New("config: user agent must not be empty")
)

// Config holds the settings of one pagescope process.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	LogLevel  string
	OutputDir string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads an optional .env file, then environment variables, on top of
// the defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.UserAgent = getEnv("PAGESCOPE_USER_AGENT", cfg.UserAgent)
	cfg.LogLevel = getEnv("PAGESCOPE_LOG_LEVEL", cfg.LogLevel)
	cfg.OutputDir = getEnv("PAGESCOPE_OUTPUT_DIR", cfg.OutputDir)

	if s := os.Getenv("PAGESCOPE_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("config: parsing PAGESCOPE_TIMEOUT %q: %w", s, err)
		}
		cfg.Timeout = d
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: got %s", errInvalidTimeout, c.Timeout)
	}
	if c.UserAgent == "" {
		return errEmptyUserAgent
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
