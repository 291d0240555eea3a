package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/baseconv/internal/domain"
)

// DefaultLogLevel keeps the interactive transcript free of log lines.
const DefaultLogLevel = "warn"

// DefaultTableBases are the bases listed by the table command.
var DefaultTableBases = []int{2, 8, 10, 16, 32, 36, 64}

// Config holds CLI configuration for baseconv.
type Config struct {
	LogLevel    string
	HistoryFile string
	Quiet       bool
	TableBases  []int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		HistoryFile: DefaultHistoryPath(),
		TableBases:  append([]int(nil), DefaultTableBases...),
	}
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	_, err := c.Level()
	return err
}

// ValidateTableBases checks the bases listed by the table command.
func (c *Config) ValidateTableBases() error {
	if len(c.TableBases) == 0 {
		return fmt.Errorf("table bases must not be empty")
	}
	for _, b := range c.TableBases {
		if err := domain.CheckBase(b); err != nil {
			return fmt.Errorf("table bases: %w", err)
		}
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("log level is required")
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// DefaultHistoryPath returns ~/.baseconv/history if the user home directory
// is accessible.
func DefaultHistoryPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".baseconv", "history")
	}
	return ""
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInts sets an int list if not empty and flag not changed.
func (s *configSetter) setInts(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]int(nil), value...)
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// setIntsFromString parses a comma separated int list.
// Used for environment variables that come as strings.
func (s *configSetter) setIntsFromString(flag, value string, dst *[]int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	ints, err := ParseInts(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = ints
	return nil
}

// ParseInts parses a comma separated list such as "2, 8,16".
func ParseInts(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}
