// Package telemetry provides logging, tracing and metrics for nightshift.
package telemetry

import (
	"context"
	"fmt"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const instrumentationName = "github.com/yairfalse/nightshift"

// Action outcomes recorded on nightshift.actions.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Config for telemetry initialization
type Config struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string // OTLP grpc endpoint; empty disables push export
	Insecure       bool
}

// Option customizes provider construction.
type Option func(*options)

type options struct {
	readers  []sdkmetric.Reader
	syncers  []sdktrace.SpanExporter
	noGlobal bool
}

// WithReader attaches an extra metric reader.
func WithReader(r sdkmetric.Reader) Option {
	return func(o *options) { o.readers = append(o.readers, r) }
}

// WithSpanSyncer exports spans synchronously to exp.
func WithSpanSyncer(exp sdktrace.SpanExporter) Option {
	return func(o *options) { o.syncers = append(o.syncers, exp) }
}

// WithoutGlobal keeps the providers out of the otel globals.
func WithoutGlobal() Option {
	return func(o *options) { o.noGlobal = true }
}

// Provider owns the tracer and meter providers and the run instruments.
// A nil *Provider is valid and records nothing.
type Provider struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	registry       *promclient.Registry
	tracer         trace.Tracer

	actions      metric.Int64Counter
	discovered   metric.Int64Counter
	familyErrors metric.Int64Counter
	waitDuration metric.Float64Histogram
}

// NewProvider creates a provider exporting metrics to a private Prometheus
// registry and, when an endpoint is configured, traces and metrics over OTLP.
func NewProvider(ctx context.Context, cfg Config, opts ...Option) (*Provider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "nightshift"
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	p := &Provider{}

	if err := p.setupTracing(ctx, cfg, res, o); err != nil {
		return nil, err
	}

	if err := p.setupMetrics(ctx, cfg, res, o); err != nil {
		_ = p.tracerProvider.Shutdown(ctx)
		return nil, err
	}

	if err := p.initInstruments(); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	return p, nil
}

func (p *Provider) setupTracing(ctx context.Context, cfg Config, res *resource.Resource, o options) error {
	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	if cfg.Endpoint != "" {
		clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			clientOpts = append(clientOpts, otlptracegrpc.WithDialOption(
				grpc.WithTransportCredentials(insecure.NewCredentials()),
			))
		}
		exp, err := otlptracegrpc.New(ctx, clientOpts...)
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp, sdktrace.WithBatchTimeout(5*time.Second)))
	}
	for _, exp := range o.syncers {
		tpOpts = append(tpOpts, sdktrace.WithSyncer(exp))
	}

	p.tracerProvider = sdktrace.NewTracerProvider(tpOpts...)
	p.tracer = p.tracerProvider.Tracer(instrumentationName)

	if !o.noGlobal {
		otel.SetTracerProvider(p.tracerProvider)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}
	return nil
}

func (p *Provider) setupMetrics(ctx context.Context, cfg Config, res *resource.Resource, o options) error {
	p.registry = promclient.NewRegistry()

	promExporter, err := prometheus.New(prometheus.WithRegisterer(p.registry))
	if err != nil {
		return fmt.Errorf("create prometheus exporter: %w", err)
	}

	mpOpts := []sdkmetric.Option{
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(promExporter),
	}

	if cfg.Endpoint != "" {
		clientOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			clientOpts = append(clientOpts, otlpmetricgrpc.WithDialOption(
				grpc.WithTransportCredentials(insecure.NewCredentials()),
			))
		}
		exp, err := otlpmetricgrpc.New(ctx, clientOpts...)
		if err != nil {
			return fmt.Errorf("create metric exporter: %w", err)
		}
		mpOpts = append(mpOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)))
	}
	for _, r := range o.readers {
		mpOpts = append(mpOpts, sdkmetric.WithReader(r))
	}

	p.meterProvider = sdkmetric.NewMeterProvider(mpOpts...)
	if !o.noGlobal {
		otel.SetMeterProvider(p.meterProvider)
	}
	return nil
}

func (p *Provider) initInstruments() error {
	meter := p.meterProvider.Meter(instrumentationName)
	var err error

	p.actions, err = meter.Int64Counter("nightshift.actions",
		metric.WithDescription("State-changing calls by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("create actions counter: %w", err)
	}

	p.discovered, err = meter.Int64Counter("nightshift.resources.discovered",
		metric.WithDescription("Resources matched by the tag filter"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("create discovered counter: %w", err)
	}

	p.familyErrors, err = meter.Int64Counter("nightshift.family.errors",
		metric.WithDescription("Family operations aborted for a region"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("create family errors counter: %w", err)
	}

	p.waitDuration, err = meter.Float64Histogram("nightshift.wait.duration",
		metric.WithDescription("Time spent waiting for resources to converge"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("create wait duration histogram: %w", err)
	}

	return nil
}

// Registry returns the Prometheus registry fed by the OTEL exporter.
func (p *Provider) Registry() *promclient.Registry {
	if p == nil {
		return nil
	}
	return p.registry
}

// WriteTextfile writes the registry in the node exporter textfile format.
func (p *Provider) WriteTextfile(path string) error {
	if p == nil || path == "" {
		return nil
	}
	if err := promclient.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Shutdown flushes and stops both providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}

	var err error
	if e := p.tracerProvider.Shutdown(ctx); e != nil {
		err = fmt.Errorf("trace shutdown: %w", e)
	}
	if e := p.meterProvider.Shutdown(ctx); e != nil && err == nil {
		err = fmt.Errorf("metric shutdown: %w", e)
	}
	return err
}

// StartSpan starts a new span.
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName).Start(ctx, name)
	}
	return p.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordAction counts one action outcome.
func (p *Provider) RecordAction(ctx context.Context, region, family, verb, status string) {
	if p == nil {
		return
	}
	p.actions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("region", region),
		attribute.String("family", family),
		attribute.String("verb", verb),
		attribute.String("status", status),
	))
}

// RecordDiscovered counts resources found for a family.
func (p *Provider) RecordDiscovered(ctx context.Context, region, family string, count int) {
	if p == nil {
		return
	}
	p.discovered.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("region", region),
		attribute.String("family", family),
	))
}

// RecordFamilyError counts a family aborted for a region.
func (p *Provider) RecordFamilyError(ctx context.Context, region, family string) {
	if p == nil {
		return
	}
	p.familyErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("region", region),
		attribute.String("family", family),
	))
}

// RecordWait records how long a wait took and how it ended.
func (p *Provider) RecordWait(ctx context.Context, region, family string, d time.Duration, timedOut bool) {
	if p == nil {
		return
	}
	p.waitDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("region", region),
		attribute.String("family", family),
		attribute.Bool("timed_out", timedOut),
	))
}
