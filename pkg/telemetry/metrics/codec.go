package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"slub/librml/pkg/config"
)

// CodecMetrics tracks document conversions.
//
// Metrics:
//   - librml_codec_conversions_total: Conversions by format, direction and result
//   - librml_codec_conversion_duration_seconds: Conversion duration
//   - librml_codec_decode_errors_total: Decode failures by error type
type CodecMetrics struct {
	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
	decodeErrorsTotal  *prometheus.CounterVec
}

// NewCodecMetrics creates and registers codec metrics with the provided registry.
func NewCodecMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CodecMetrics {
	cm := &CodecMetrics{
		conversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "codec",
				Name:      "conversions_total",
				Help:      "Total number of document encodes and decodes",
			},
			[]string{"format", "direction", "result"},
		),

		conversionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "codec",
				Name:      "conversion_duration_seconds",
				Help:      "Duration of document encodes and decodes in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
			},
			[]string{"format", "direction"},
		),

		decodeErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "codec",
				Name:      "decode_errors_total",
				Help:      "Total number of rejected documents by error type",
			},
			[]string{"format", "error_type"},
		),
	}

	registry.MustRegister(
		cm.conversionsTotal,
		cm.conversionDuration,
		cm.decodeErrorsTotal,
	)

	return cm
}

// RecordConversion records one encode or decode.
func (cm *CodecMetrics) RecordConversion(format, direction, result string, duration time.Duration) {
	cm.conversionsTotal.WithLabelValues(format, direction, result).Inc()
	cm.conversionDuration.WithLabelValues(format, direction).Observe(duration.Seconds())
}

// RecordError records a rejected document.
func (cm *CodecMetrics) RecordError(format, errorType string) {
	cm.decodeErrorsTotal.WithLabelValues(format, errorType).Inc()
}
