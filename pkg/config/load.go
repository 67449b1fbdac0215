package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "LIBRML_"

// LoadConfig loads configuration from a YAML file at the specified path.
// Keys missing from the file keep their default values. The result is
// validated; environment variables are not consulted, use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := NewDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention LIBRML_SECTION_FIELD (e.g., LIBRML_TEMPLATES_DIR) and always
// take precedence over file-based configuration.
//
// An empty path skips the file and starts from the defaults.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = NewDefaultConfig()
	} else {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Malformed booleans and durations are reported as a
// ValidationError naming the variable.
func applyEnvOverrides(cfg *Config) error {
	var errs []FieldError

	// Template overrides
	if val := os.Getenv(EnvPrefix + "TEMPLATES_DIR"); val != "" {
		cfg.Templates.Dir = val
	}
	if val := os.Getenv(EnvPrefix + "TEMPLATES_EXTENSION"); val != "" {
		cfg.Templates.Extension = val
	}
	if val := os.Getenv(EnvPrefix + "TEMPLATES_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Templates.Watch = b
		} else {
			errs = append(errs, envError("TEMPLATES_WATCH", err))
		}
	}
	if val, ok := os.LookupEnv(EnvPrefix + "TEMPLATES_RESCAN_SCHEDULE"); ok {
		cfg.Templates.RescanSchedule = val
	}
	if val := os.Getenv(EnvPrefix + "TEMPLATES_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Templates.Debounce = d
		} else {
			errs = append(errs, envError("TEMPLATES_DEBOUNCE", err))
		}
	}

	// Output overrides
	if val := os.Getenv(EnvPrefix + "OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val, ok := os.LookupEnv(EnvPrefix + "OUTPUT_INDENT"); ok {
		cfg.Output.Indent = val
	}

	// Telemetry overrides
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		} else {
			errs = append(errs, envError("TELEMETRY_METRICS_ENABLED", err))
		}
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_NAMESPACE"); val != "" {
		cfg.Telemetry.Metrics.Namespace = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_TEXTFILE_PATH"); val != "" {
		cfg.Telemetry.Metrics.TextfilePath = val
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func envError(name string, err error) FieldError {
	return FieldError{
		Field:   EnvPrefix + name,
		Message: fmt.Sprintf("invalid value: %v", err),
	}
}
