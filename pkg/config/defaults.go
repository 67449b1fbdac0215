package config

import "time"

// Default values for configuration fields.
const (
	// Template defaults
	DefaultTemplatesDir       = "templates"
	DefaultTemplatesExtension = ".tmpl"
	DefaultTemplatesWatch     = false
	DefaultTemplatesDebounce  = 100 * time.Millisecond

	// Output defaults
	DefaultOutputFormat = "json"
	DefaultOutputIndent = "  "

	// Telemetry defaults
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMetricsEnabled   = false
	DefaultMetricsNamespace = "librml"
)

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Template defaults
	if cfg.Templates.Dir == "" {
		cfg.Templates.Dir = DefaultTemplatesDir
	}
	if cfg.Templates.Extension == "" {
		cfg.Templates.Extension = DefaultTemplatesExtension
	}
	if cfg.Templates.Debounce == 0 {
		cfg.Templates.Debounce = DefaultTemplatesDebounce
	}

	// Output defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// NewDefaultConfig returns a configuration with every default applied.
// Indentation is only defaulted here: a file may set indent to "" on purpose.
func NewDefaultConfig() *Config {
	cfg := &Config{
		Output: OutputConfig{Indent: DefaultOutputIndent},
	}
	ApplyDefaults(cfg)
	return cfg
}
