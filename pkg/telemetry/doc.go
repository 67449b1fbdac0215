// Package telemetry groups the observability packages of librml.
//
// # Components
//
//   - logging: Structured logging on log/slog with item, template and
//     format fields carried in the context
//   - metrics: Prometheus collectors for conversions and templates, with a
//     node_exporter textfile export for one-shot CLI runs
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "text"})
//	if err != nil {
//		return err
//	}
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, prometheus.NewRegistry())
//
//	start := time.Now()
//	doc, err := codec.Decode(data, codec.FormatJSON)
//	collector.RecordConversion("json", metrics.DirectionDecode, err, time.Since(start))
//
//	if path := cfg.Telemetry.Metrics.TextfilePath; path != "" {
//		_ = collector.WriteTextfile(path)
//	}
//
// Both collectors and loggers tolerate a disabled configuration: a nil or
// disabled Collector records nothing and logging.NewNop discards output.
package telemetry
