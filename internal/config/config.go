// Package config reads the configuration of the backend from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kakeibo/backend/pkg/memo"
	"golang.org/x/exp/slices"
)

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid absolute URL")
)

type Config struct {
	// HTTP server
	APIURL string
	Port   string

	// Storage
	DataDir string

	// Logging
	GinMode   string
	LogFormat string

	// Router
	CORSAllowOrigins []string
	EnablePprof      bool

	Memo Memo

	// problems found while reading values
	problems []string
}

// Memo configures how free text memos are evaluated.
type Memo struct {
	NormalizeFullWidth bool // Fold full-width digits to ASCII
	RoundLive          bool // Round totals in API responses
	RoundReport        bool // Round totals in HTML reports
}

// Load reads the configuration. Variables from the files, ".env" if none are
// given, are only used if they are not set in the environment. Missing files
// are ignored.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var c Config
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			c.problems = append(c.problems, fmt.Sprintf("could not read %s: %v", file, err))
		}
	}

	c.APIURL = os.Getenv("API_URL")
	c.Port = getEnv("PORT", "8080")
	c.DataDir = getEnv("DATA_DIR", "data")
	c.GinMode = getEnv("GIN_MODE", "release")
	c.LogFormat = os.Getenv("LOG_FORMAT")
	c.CORSAllowOrigins = strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS"))
	c.EnablePprof = c.getEnvBool("ENABLE_PPROF", false)
	c.Memo = Memo{
		NormalizeFullWidth: c.getEnvBool("MEMO_NORMALIZE_FULL_WIDTH", true),
		RoundLive:          c.getEnvBool("MEMO_ROUND_LIVE", false),
		RoundReport:        c.getEnvBool("MEMO_ROUND_REPORT", true),
	}

	return c
}

// Validate returns an error listing all problems with the configuration.
func (c Config) Validate() error {
	problems := slices.Clone(c.problems)

	if c.APIURL == "" {
		problems = append(problems, ErrAPIURLMissing.Error())
	} else if _, err := c.URL(); err != nil {
		problems = append(problems, err.Error())
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DataDir == "" {
		problems = append(problems, "data directory cannot be empty")
	}

	validModes := []string{"debug", "release", "test"}
	if !slices.Contains(validModes, c.GinMode) {
		problems = append(problems, fmt.Sprintf("invalid gin mode '%s': must be one of %v", c.GinMode, validModes))
	}

	validFormats := []string{"", "human", "json"}
	if !slices.Contains(validFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API_URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: '%s'", ErrAPIURLInvalid, c.APIURL)
	}

	return u, nil
}

// DatabasePath returns the path of the SQLite database file.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "kakeibo.db")
}

// HumanLogs reports if logs are written for humans instead of as JSON.
func (c Config) HumanLogs() bool {
	return c.LogFormat == "human" || (c.LogFormat == "" && c.GinMode == "debug")
}

// LiveParser returns the memo parser for API responses.
func (c Config) LiveParser() memo.Parser {
	return memo.Parser{NormalizeFullWidth: c.Memo.NormalizeFullWidth, Round: c.Memo.RoundLive}
}

// ReportParser returns the memo parser for HTML reports.
func (c Config) ReportParser() memo.Parser {
	return memo.Parser{NormalizeFullWidth: c.Memo.NormalizeFullWidth, Round: c.Memo.RoundReport}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool parses a boolean variable. Unparseable values are recorded
// as problems and the default is used.
func (c *Config) getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("invalid value '%s' for %s: must be true or false", value, key))
		return defaultValue
	}

	return b
}
