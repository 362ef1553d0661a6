// Package observe provides application-wide observability primitives for
// Voxhound: OpenTelemetry metrics, distributed tracing, structured logging,
// and HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Voxhound metrics.
const meterName = "github.com/mvasanth/voxhound"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms per detection stage ---

	// DecodeDuration tracks base64 + container decoding latency.
	DecodeDuration metric.Float64Histogram

	// ExtractDuration tracks acoustic feature extraction latency.
	ExtractDuration metric.Float64Histogram

	// ClassifyDuration tracks rule evaluation latency.
	ClassifyDuration metric.Float64Histogram

	// --- Counters ---

	// Detections counts completed detections. Use with attributes:
	//   attribute.String("language", ...), attribute.String("label", ...)
	Detections metric.Int64Counter

	// DetectionErrors counts failed detections. Use with attribute:
	//   attribute.String("stage", ...)
	DetectionErrors metric.Int64Counter

	// --- Payload sizes ---

	// AudioBytes tracks the decoded audio payload size per request.
	AudioBytes metric.Int64Histogram

	// --- HTTP middleware ---

	// HTTPRequestDuration tracks HTTP request processing time. Use with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...), attribute.Int("status", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds) optimised
// for the CPU-bound analysis stages.
var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
}

// byteBuckets defines histogram bucket boundaries for audio payload sizes.
var byteBuckets = []float64{
	1 << 10, 16 << 10, 64 << 10, 256 << 10, 1 << 20, 4 << 20, 16 << 20, 64 << 20,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	// Histograms.
	if met.DecodeDuration, err = m.Float64Histogram("voxhound.decode.duration",
		metric.WithDescription("Latency of base64 and audio container decoding."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ExtractDuration, err = m.Float64Histogram("voxhound.extract.duration",
		metric.WithDescription("Latency of acoustic feature extraction."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ClassifyDuration, err = m.Float64Histogram("voxhound.classify.duration",
		metric.WithDescription("Latency of rule-based classification."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	// Counters.
	if met.Detections, err = m.Int64Counter("voxhound.detections",
		metric.WithDescription("Total completed detections by language and label."),
	); err != nil {
		return nil, err
	}
	if met.DetectionErrors, err = m.Int64Counter("voxhound.detection.errors",
		metric.WithDescription("Total failed detections by pipeline stage."),
	); err != nil {
		return nil, err
	}

	// Payload sizes.
	if met.AudioBytes, err = m.Int64Histogram("voxhound.audio.bytes",
		metric.WithDescription("Decoded audio payload size per request."),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(byteBuckets...),
	); err != nil {
		return nil, err
	}

	// HTTP middleware histogram.
	if met.HTTPRequestDuration, err = m.Float64Histogram("voxhound.http.request.duration",
		metric.WithDescription("HTTP request latency by method, path, and status."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordDetection is a convenience method that records a completed detection
// with the standard attribute set.
func (m *Metrics) RecordDetection(ctx context.Context, language, label string) {
	m.Detections.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("language", language),
			attribute.String("label", label),
		),
	)
}

// RecordDetectionError is a convenience method that records a failed
// detection attributed to the pipeline stage that rejected it.
func (m *Metrics) RecordDetectionError(ctx context.Context, stage string) {
	m.DetectionErrors.Add(ctx, 1,
		metric.WithAttributes(attribute.String("stage", stage)),
	)
}
