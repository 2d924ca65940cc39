// Package pipeline runs render jobs: decode a tree document, render it,
// write the HTML, and record metrics and a trace span for the run.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlnode/internal/document"
	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/internal/metrics"
)

// Default tracer name for render spans.
const defaultTracerName = "htmlnode"

// Config configures a Runner.
type Config struct {
	// Logger receives stage and failure logs. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics records each job. Nil disables recording.
	Metrics *metrics.Recorder

	// Tracer starts a span per job. If nil, the global provider's
	// "htmlnode" tracer is used.
	Tracer trace.Tracer

	// TrailingNewline appends "\n" after the HTML written to the output.
	TrailingNewline bool
}

// Option configures a Runner.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// WithTracer sets the tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) {
		c.Tracer = tracer
	}
}

// WithTrailingNewline enables a newline after the written HTML.
func WithTrailingNewline(enabled bool) Option {
	return func(c *Config) {
		c.TrailingNewline = enabled
	}
}

// Runner executes render jobs. It is safe for concurrent use.
type Runner struct {
	config Config
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	var config Config
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Tracer == nil {
		config.Tracer = otel.Tracer(defaultTracerName)
	}
	return &Runner{config: config}
}

// Result describes a finished job.
type Result struct {
	Source   string
	HTML     string
	Nodes    int
	Depth    int
	Duration time.Duration
}

// Render decodes the document read from in, renders it and writes the HTML
// to out. The source names the document in errors and logs.
func (r *Runner) Render(ctx context.Context, source string, in io.Reader, out io.Writer) (*Result, error) {
	return r.run(ctx, "htmlnode.render", source, in, out)
}

// Check decodes and renders the document without writing output.
func (r *Runner) Check(ctx context.Context, source string, in io.Reader) (*Result, error) {
	return r.run(ctx, "htmlnode.check", source, in, nil)
}

func (r *Runner) run(ctx context.Context, spanName, source string, in io.Reader, out io.Writer) (res *Result, err error) {
	logger := r.config.Logger.With("source", source)
	start := time.Now()

	ctx, span := r.config.Tracer.Start(ctx, spanName,
		trace.WithAttributes(attribute.String("htmlnode.source", source)),
	)
	defer span.End()

	defer func() {
		obs := metrics.Observation{Duration: time.Since(start), Err: err}
		if res != nil {
			res.Duration = obs.Duration
			obs.Nodes, obs.Depth, obs.Bytes = res.Nodes, res.Depth, len(res.HTML)
			span.SetAttributes(
				attribute.Int("htmlnode.nodes", res.Nodes),
				attribute.Int("htmlnode.depth", res.Depth),
				attribute.Int("htmlnode.bytes", len(res.HTML)),
			)
		}
		r.config.Metrics.Observe(obs)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error("render failed", "error", err)
			return
		}
		span.SetStatus(codes.Ok, "")
		logger.Info("rendered", "nodes", res.Nodes, "depth", res.Depth,
			"bytes", len(res.HTML), "duration", res.Duration)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("decoding document")
	doc, err := r.decode(ctx, source, in)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("rendering tree")
	_, renderSpan := r.config.Tracer.Start(ctx, "htmlnode.render_tree")
	html, err := doc.Root.Render()
	renderSpan.End()
	if err != nil {
		return nil, err
	}

	res = &Result{
		Source: source,
		HTML:   html,
		Nodes:  doc.Nodes(),
		Depth:  doc.Depth(),
	}

	if out != nil {
		if err := r.write(out, html); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *Runner) decode(ctx context.Context, source string, in io.Reader) (*document.Document, error) {
	_, span := r.config.Tracer.Start(ctx, "htmlnode.decode")
	defer span.End()
	return document.Read(source, in)
}

func (r *Runner) write(out io.Writer, html string) error {
	if _, err := io.WriteString(out, html); err != nil {
		return errors.New(errors.CodeOutputWrite).Wrap(err)
	}
	if r.config.TrailingNewline {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return errors.New(errors.CodeOutputWrite).Wrap(err)
		}
	}
	return nil
}
