package spandoc

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config contains all configuration options for an import
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StrictAttributes aborts the whole import on the first malformed run
	// property value (for example a non-numeric w:sz). When false the
	// offending attribute is skipped and the import continues.
	StrictAttributes bool
	// MaxInputSize caps the number of bytes read from the input, after
	// decompression. 0 means no limit.
	MaxInputSize int64
	// CacheMaxSize is the maximum number of buffers an Importer caches. 0 disables caching.
	CacheMaxSize int
	// CacheTTL is the time-to-live for cached buffers. 0 means no expiration.
	CacheTTL time.Duration
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"off":   true,
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:         "info",
		StrictAttributes: false,
		MaxInputSize:     64 << 20,
		CacheMaxSize:     0,
		CacheTTL:         0,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// SPANDOC_LOG_LEVEL
	if val := strings.ToLower(strings.TrimSpace(os.Getenv("SPANDOC_LOG_LEVEL"))); validLogLevels[val] {
		config.LogLevel = val
	}

	// SPANDOC_STRICT
	if val := os.Getenv("SPANDOC_STRICT"); val != "" {
		config.StrictAttributes = parseBool(val)
	}

	// SPANDOC_MAX_INPUT_SIZE
	if val := os.Getenv("SPANDOC_MAX_INPUT_SIZE"); val != "" {
		if size, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.MaxInputSize = size
		}
	}

	// SPANDOC_CACHE_MAX_SIZE
	if val := os.Getenv("SPANDOC_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.CacheMaxSize = size
		}
	}

	// SPANDOC_CACHE_TTL
	if val := os.Getenv("SPANDOC_CACHE_TTL"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.CacheTTL = duration
		}
	}

	return config
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MaxInputSize < 0 {
		return errors.New("max input size cannot be negative")
	}

	if c.CacheMaxSize < 0 {
		return errors.New("cache max size cannot be negative")
	}

	if c.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
