// Package config provides configuration management for the librml tool.
//
// Configuration is read from a YAML file, completed with defaults and
// overridden by environment variables. There is no global instance: the
// caller loads a *Config once and passes it to the components that need it.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("librml.yaml")
//	cfg, err := config.LoadConfigWithEnvOverrides("librml.yaml")
//	cfg, err := config.LoadConfigWithEnvOverrides("")  // defaults + env only
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention LIBRML_SECTION_FIELD.
// For example:
//
//   - LIBRML_TEMPLATES_DIR overrides templates.dir
//   - LIBRML_OUTPUT_FORMAT overrides output.format
//   - LIBRML_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Validation
//
// Validation errors include field paths and collect every problem at once:
//
//	configuration validation failed with 2 errors:
//	  - output.format: invalid output format "toml": must be 'json', 'yaml', 'cbor', or 'xml'
//	  - templates.rescan_schedule: invalid cron expression "daily": ...
//
// # Example Configuration
//
//	templates:
//	  dir: "/etc/librml/templates"
//	  watch: true
//	  rescan_schedule: "0 * * * *"
//
//	output:
//	  format: "xml"
//	  indent: "  "
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "text"
//	  metrics:
//	    enabled: true
//	    textfile_path: "/var/lib/node_exporter/librml.prom"
package config
