package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/alu"
	"github.com/cesarkawakami/adventofcode2021vs4/internal/cli/output"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q (want one of %s)", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("invalid log_format %q (want one of %s)", c.LogFormat, strings.Join(logFormats, ", "))
	}
	if !slices.Contains(output.ColorModes, strings.ToLower(c.Color)) {
		return fmt.Errorf("invalid color %q (want one of %s)", c.Color, strings.Join(output.ColorModes, ", "))
	}
	if err := validateSentinel(c.Sentinel); err != nil {
		return err
	}
	if strings.TrimSpace(c.CommentPrefix) == "" {
		return fmt.Errorf("comment_prefix must not be empty")
	}
	return nil
}

// Level returns the slog level for the config. Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// validateSentinel accepts only prefixes of the template's opening keyword.
// Any other sentinel splits the input somewhere a block cannot start.
func validateSentinel(sentinel string) error {
	keyword := alu.CanonicalTemplate().Pattern(0).Fields[0].Literal
	if sentinel == "" || !strings.HasPrefix(keyword, sentinel) {
		return fmt.Errorf("invalid sentinel %q (must be a non-empty prefix of %q)", sentinel, keyword)
	}
	return nil
}
