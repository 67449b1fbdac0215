package config

import (
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Templates.Dir != DefaultTemplatesDir {
		t.Errorf("expected templates dir %q, got %q", DefaultTemplatesDir, cfg.Templates.Dir)
	}
	if cfg.Templates.Extension != DefaultTemplatesExtension {
		t.Errorf("expected extension %q, got %q", DefaultTemplatesExtension, cfg.Templates.Extension)
	}
	if cfg.Templates.Debounce != DefaultTemplatesDebounce {
		t.Errorf("expected debounce %v, got %v", DefaultTemplatesDebounce, cfg.Templates.Debounce)
	}
	if cfg.Output.Format != DefaultOutputFormat {
		t.Errorf("expected output format %q, got %q", DefaultOutputFormat, cfg.Output.Format)
	}
	if cfg.Telemetry.Logging.Level != DefaultLogLevel {
		t.Errorf("expected logging level %q, got %q", DefaultLogLevel, cfg.Telemetry.Logging.Level)
	}
	if cfg.Telemetry.Logging.Format != DefaultLogFormat {
		t.Errorf("expected logging format %q, got %q", DefaultLogFormat, cfg.Telemetry.Logging.Format)
	}
	if cfg.Telemetry.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("expected namespace %q, got %q", DefaultMetricsNamespace, cfg.Telemetry.Metrics.Namespace)
	}
}

func TestApplyDefaults_PreservesValues(t *testing.T) {
	cfg := &Config{
		Templates: TemplatesConfig{Dir: "custom", Debounce: time.Second},
		Output:    OutputConfig{Format: "xml"},
	}
	ApplyDefaults(cfg)

	if cfg.Templates.Dir != "custom" {
		t.Errorf("expected templates dir %q, got %q", "custom", cfg.Templates.Dir)
	}
	if cfg.Templates.Debounce != time.Second {
		t.Errorf("expected debounce %v, got %v", time.Second, cfg.Templates.Debounce)
	}
	if cfg.Output.Format != "xml" {
		t.Errorf("expected output format %q, got %q", "xml", cfg.Output.Format)
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	first := *cfg
	ApplyDefaults(cfg)

	if *cfg != first {
		t.Errorf("ApplyDefaults is not idempotent: %+v != %+v", *cfg, first)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Output.Indent != DefaultOutputIndent {
		t.Errorf("expected indent %q, got %q", DefaultOutputIndent, cfg.Output.Indent)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default configuration is invalid: %v", err)
	}
}
