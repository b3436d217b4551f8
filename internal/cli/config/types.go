// Package config provides configuration management for the sqlrefs CLI.
//
// Settings layer in the usual precedence order: built-in defaults, then
// the sqlrefs.yaml config file, then SQLREFS_-prefixed environment
// variables, then command-line flags.
package config

// Defaults for unset configuration values.
const (
	DefaultOutput = "auto"

	// DefaultMaxLength is the advisory input bound applied at the CLI
	// boundary. The extractor core itself accepts input of any length;
	// the bound exists to cap scanning cost on adversarial input.
	DefaultMaxLength = 1 << 20

	DefaultJobs = 4
)

// Config holds all CLI configuration options.
type Config struct {
	Output     string `koanf:"output"`
	MaxLength  int    `koanf:"max_length"`
	SchemaFile string `koanf:"schema_file"`
	Driver     string `koanf:"driver"`
	DSN        string `koanf:"dsn"`
	Jobs       int    `koanf:"jobs"`
	Verbose    bool   `koanf:"verbose"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		MaxLength: DefaultMaxLength,
		Jobs:      DefaultJobs,
	}
}
