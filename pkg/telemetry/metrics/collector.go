package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"slub/librml/pkg/config"
)

// Conversion directions.
const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"
)

// Results used as label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// otherLabel replaces label values once the cardinality limit is reached.
const otherLabel = "other"

// Collector owns every Prometheus metric of librml. It registers them on an
// injected registry and offers one method per event.
//
// A nil *Collector and a collector built from a disabled configuration
// accept every call and record nothing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	codecMetrics    *CodecMetrics
	templateMetrics *TemplateMetrics

	// Template identifiers come from the filesystem and are unbounded.
	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a metrics collector. If registry is nil a fresh
// registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{Enabled: true, Namespace: "librml"}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}

	return &Collector{
		config:             cfg,
		registry:           registry,
		codecMetrics:       NewCodecMetrics(cfg, registry),
		templateMetrics:    NewTemplateMetrics(cfg, registry),
		cardinalityLimiter: NewCardinalityLimiter(1000),
	}
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordConversion records one encode or decode.
//
// Parameters:
//   - format: Serialization format ("json", "yaml", "cbor", "xml")
//   - direction: DirectionEncode or DirectionDecode
//   - err: The operation's error, nil on success
//   - duration: Time taken
func (c *Collector) RecordConversion(format, direction string, err error, duration time.Duration) {
	if !c.enabled() {
		return
	}
	c.codecMetrics.RecordConversion(format, direction, resultOf(err), duration)
}

// RecordDecodeError counts a decode failure by error type (e.g.
// "not_valid", "coercion").
func (c *Collector) RecordDecodeError(format, errorType string) {
	if !c.enabled() {
		return
	}
	c.codecMetrics.RecordError(format, errorType)
}

// SetTemplatesLoaded sets the number of templates currently loaded.
func (c *Collector) SetTemplatesLoaded(n int) {
	if !c.enabled() {
		return
	}
	c.templateMetrics.SetLoaded(n)
}

// RecordTemplateReload records a reload of the template directory.
//
// Parameters:
//   - trigger: What caused the reload ("initial", "watch", "schedule")
//   - err: The reload error, nil on success
func (c *Collector) RecordTemplateReload(trigger string, err error) {
	if !c.enabled() {
		return
	}
	c.templateMetrics.RecordReload(trigger, resultOf(err))
}

// RecordTemplateRender records a template render.
func (c *Collector) RecordTemplateRender(templateID string, err error) {
	if !c.enabled() {
		return
	}
	if !c.cardinalityLimiter.Allow(fmt.Sprintf("template:%s", templateID)) {
		templateID = otherLabel
	}
	c.templateMetrics.RecordRender(templateID, resultOf(err))
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label set is allowed. Returns true if the label set
// already exists or if we haven't reached the cardinality limit yet.
// Returns false if adding this label set would exceed the limit.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
