// Package metrics records Prometheus metrics for render jobs and exports
// them in the node_exporter textfile format.
package metrics

import (
	stderrors "errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// Config configures the recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "htmlnode").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the collectors. Default: a fresh registry, so
	// several recorders can coexist in one process.
	Registry *prometheus.Registry
}

// Option configures the recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "htmlnode",
		Buckets:   prometheus.DefBuckets,
	}
}

// Recorder holds the render collectors. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	rendersTotal   *prometheus.CounterVec
	renderErrors   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	nodesRendered  prometheus.Counter
	outputBytes    prometheus.Histogram
	treeDepth      prometheus.Histogram
}

// New creates a Recorder and registers its collectors.
func New(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	if len(config.Buckets) == 0 {
		config.Buckets = prometheus.DefBuckets
	}

	factory := promauto.With(config.Registry)

	return &Recorder{
		registry: config.Registry,

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "renders_total",
			Help:        "Total number of render jobs by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "render_errors_total",
			Help:        "Total number of failed render jobs by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_duration_seconds",
			Help:        "Time spent decoding and rendering a tree",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		nodesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "nodes_rendered_total",
			Help:        "Total number of nodes in successfully rendered trees",
			ConstLabels: config.ConstLabels,
		}),

		outputBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "output_bytes",
			Help:        "Size of rendered HTML in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(64, 4, 8), // 64B to 1MB
		}),

		treeDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "tree_depth",
			Help:        "Nesting depth of rendered trees",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 8), // 1 to 128
		}),
	}
}

// Observation describes one finished render job.
type Observation struct {
	Nodes    int
	Depth    int
	Bytes    int
	Duration time.Duration
	Err      error
}

// Observe records a finished render job.
func (r *Recorder) Observe(o Observation) {
	if r == nil {
		return
	}
	r.renderDuration.Observe(o.Duration.Seconds())

	if o.Err != nil {
		r.rendersTotal.WithLabelValues("error").Inc()
		r.renderErrors.WithLabelValues(errorCode(o.Err)).Inc()
		return
	}

	r.rendersTotal.WithLabelValues("success").Inc()
	r.nodesRendered.Add(float64(o.Nodes))
	r.outputBytes.Observe(float64(o.Bytes))
	r.treeDepth.Observe(float64(o.Depth))
}

// errorCode maps an error to a bounded label value.
func errorCode(err error) string {
	var ne *errors.NodeError
	if stderrors.As(err, &ne) && ne.Code != "" {
		return ne.Code
	}
	return "internal"
}

// Gatherer returns the registry holding the recorder's collectors. A nil
// recorder returns an empty registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format,
// atomically replacing any previous file.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.New(errors.CodeMetricsWrite).Wrap(err)
	}
	return nil
}
