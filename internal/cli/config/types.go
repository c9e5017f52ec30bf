// Package config loads aluparse configuration from defaults, an optional YAML
// file, ALUPARSE_* environment variables and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output        string `koanf:"output"`
	Out           string `koanf:"out"`
	Verbose       bool   `koanf:"verbose"`
	LogLevel      string `koanf:"log_level"`
	LogFormat     string `koanf:"log_format"`
	Color         string `koanf:"color"`
	Sentinel      string `koanf:"sentinel"`
	CommentPrefix string `koanf:"comment_prefix"`
}

// Default configuration values.
const (
	DefaultOutput        = "literal"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultColor         = "auto"
	DefaultSentinel      = "inp"
	DefaultCommentPrefix = "#"
)

// EnvPrefix is the prefix for configuration environment variables.
const EnvPrefix = "ALUPARSE_"

// Default returns a config with every field at its default.
func Default() *Config {
	return &Config{
		Output:        DefaultOutput,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		Color:         DefaultColor,
		Sentinel:      DefaultSentinel,
		CommentPrefix: DefaultCommentPrefix,
	}
}
