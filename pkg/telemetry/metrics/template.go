package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"slub/librml/pkg/config"
)

// TemplateMetrics tracks the template subsystem.
//
// Metrics:
//   - librml_templates_loaded: Templates currently loaded
//   - librml_templates_reloads_total: Directory reloads by trigger and result
//   - librml_templates_renders_total: Renders by template and result
type TemplateMetrics struct {
	loaded       prometheus.Gauge
	reloadsTotal *prometheus.CounterVec
	rendersTotal *prometheus.CounterVec
}

// NewTemplateMetrics creates and registers template metrics with the provided registry.
func NewTemplateMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *TemplateMetrics {
	tm := &TemplateMetrics{
		loaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: "templates",
				Name:      "loaded",
				Help:      "Number of templates currently loaded",
			},
		),

		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "templates",
				Name:      "reloads_total",
				Help:      "Total number of template directory reloads",
			},
			[]string{"trigger", "result"},
		),

		rendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "templates",
				Name:      "renders_total",
				Help:      "Total number of template renders",
			},
			[]string{"template", "result"},
		),
	}

	registry.MustRegister(
		tm.loaded,
		tm.reloadsTotal,
		tm.rendersTotal,
	)

	return tm
}

// SetLoaded sets the number of loaded templates.
func (tm *TemplateMetrics) SetLoaded(n int) {
	tm.loaded.Set(float64(n))
}

// RecordReload records a directory reload.
func (tm *TemplateMetrics) RecordReload(trigger, result string) {
	tm.reloadsTotal.WithLabelValues(trigger, result).Inc()
}

// RecordRender records a template render.
func (tm *TemplateMetrics) RecordRender(templateID, result string) {
	tm.rendersTotal.WithLabelValues(templateID, result).Inc()
}
