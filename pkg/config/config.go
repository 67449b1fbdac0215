package config

import "time"

// Config is the root configuration structure for the librml tool.
// It contains the template subsystem, output and telemetry settings.
type Config struct {
	// Templates contains configuration for the template directory and its
	// reload behavior.
	Templates TemplatesConfig `yaml:"templates"`

	// Output contains configuration for how documents are written.
	Output OutputConfig `yaml:"output"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TemplatesConfig contains configuration for the template subsystem.
type TemplatesConfig struct {
	// Dir is the directory scanned for templates.
	// Default: "templates"
	Dir string `yaml:"dir"`

	// Extension is the file extension of template files. Each template has
	// a sidecar "<name>.meta.json" next to it.
	// Default: ".tmpl"
	Extension string `yaml:"extension"`

	// Watch enables reloading templates when files in Dir change.
	// Default: false
	Watch bool `yaml:"watch"`

	// RescanSchedule is a standard five-field cron expression on which the
	// directory is rescanned. Empty disables scheduled rescans.
	// Example: "*/15 * * * *"
	RescanSchedule string `yaml:"rescan_schedule"`

	// Debounce is the quiet period after a file change before templates are
	// reloaded. Bursts of editor writes collapse into one reload.
	// Default: 100ms
	Debounce time.Duration `yaml:"debounce"`
}

// OutputConfig contains configuration for document output.
type OutputConfig struct {
	// Format is the default output format: "json", "yaml", "cbor" or "xml".
	// Default: "json"
	Format string `yaml:"format"`

	// Indent is the indentation used when pretty-printing JSON and XML.
	// Empty produces compact output.
	// Default: "  "
	Indent string `yaml:"indent"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains configuration for structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "json" or "text".
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes the source file and line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains configuration for Prometheus metrics.
type MetricsConfig struct {
	// Enabled turns on metric collection.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	// Default: "librml"
	Namespace string `yaml:"namespace"`

	// TextfilePath is where the CLI writes collected metrics on exit, in
	// the node_exporter textfile format. Empty disables the export.
	// Example: "/var/lib/node_exporter/librml.prom"
	TextfilePath string `yaml:"textfile_path"`
}
