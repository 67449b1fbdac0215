// Package metrics provides Prometheus metrics for librml.
//
// # Metrics Categories
//
//   - Codec Metrics: conversions by format, direction and result, durations,
//     decode errors by type
//   - Template Metrics: templates loaded, directory reloads, renders
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	start := time.Now()
//	doc, err := codec.Decode(data, codec.FormatXML)
//	collector.RecordConversion("xml", metrics.DirectionDecode, err, time.Since(start))
//
//	// On exit
//	if err := collector.WriteTextfile(cfg.Telemetry.Metrics.TextfilePath); err != nil {
//		logger.Error("metrics export failed", "error", err)
//	}
//
// The CLI is short-lived, so metrics are exported to a node_exporter textfile
// rather than served over HTTP.
//
// # Cardinality
//
// Template identifiers come from the template directory. After 1000 distinct
// identifiers further renders are counted under template="other".
package metrics
