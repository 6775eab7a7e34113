// Package metrics records engine and worker activity as OpenTelemetry
// meters, exported over OTLP/gRPC when enabled.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "brandkit"
	serviceVersion = "1.0.0"
)

// Config holds OTLP exporter settings.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// Recorder is what the API and the regeneration worker report to.
type Recorder interface {
	PaletteGenerated(ctx context.Context, source string, steps int, fallback bool)
	ScaleComputed(ctx context.Context, method string)
	BrandRegenerated(ctx context.Context, palettes int, err error)
	Close(ctx context.Context) error
}

// Exporter records metrics on an OTel meter provider.
type Exporter struct {
	provider           *sdkmetric.MeterProvider
	generationsTotal   metric.Int64Counter
	fallbacksTotal     metric.Int64Counter
	paletteSteps       metric.Int64Histogram
	scalesTotal        metric.Int64Counter
	regenerationsTotal metric.Int64Counter
}

// NewExporter creates an exporter that pushes to an OTLP collector.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	generationsTotal, err := meter.Int64Counter(
		"brandkit_palette_generations_total",
		metric.WithDescription("Palettes generated"),
		metric.WithUnit("{palette}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating generations counter: %w", err)
	}

	fallbacksTotal, err := meter.Int64Counter(
		"brandkit_palette_fallbacks_total",
		metric.WithDescription("Palettes that degraded to the neutral fallback"),
		metric.WithUnit("{palette}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fallbacks counter: %w", err)
	}

	paletteSteps, err := meter.Int64Histogram(
		"brandkit_palette_steps",
		metric.WithDescription("Steps per generated palette"),
		metric.WithUnit("{step}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating steps histogram: %w", err)
	}

	scalesTotal, err := meter.Int64Counter(
		"brandkit_type_scales_total",
		metric.WithDescription("Type scales computed"),
		metric.WithUnit("{scale}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scales counter: %w", err)
	}

	regenerationsTotal, err := meter.Int64Counter(
		"brandkit_brand_regenerations_total",
		metric.WithDescription("Debounced brand regeneration runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating regenerations counter: %w", err)
	}

	return &Exporter{
		provider:           provider,
		generationsTotal:   generationsTotal,
		fallbacksTotal:     fallbacksTotal,
		paletteSteps:       paletteSteps,
		scalesTotal:        scalesTotal,
		regenerationsTotal: regenerationsTotal,
	}, nil
}

func (e *Exporter) PaletteGenerated(ctx context.Context, source string, steps int, fallback bool) {
	opt := metric.WithAttributes(attribute.String("source", source))
	e.generationsTotal.Add(ctx, 1, opt)
	e.paletteSteps.Record(ctx, int64(steps), opt)
	if fallback {
		e.fallbacksTotal.Add(ctx, 1, opt)
	}
}

func (e *Exporter) ScaleComputed(ctx context.Context, method string) {
	e.scalesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))
}

func (e *Exporter) BrandRegenerated(ctx context.Context, palettes int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	e.regenerationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
		attribute.Int("palettes", palettes),
	))
}

// Close shuts down the provider and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}

// NoOp discards everything.
type NoOp struct{}

func NewNoOp() *NoOp {
	return &NoOp{}
}

func (NoOp) PaletteGenerated(context.Context, string, int, bool) {}

func (NoOp) ScaleComputed(context.Context, string) {}

func (NoOp) BrandRegenerated(context.Context, int, error) {}

func (NoOp) Close(context.Context) error { return nil }

// New returns an OTLP exporter when cfg enables one, otherwise a NoOp.
// The error is non-nil only when an enabled exporter could not start; the
// returned Recorder is usable either way.
func New(ctx context.Context, cfg Config) (Recorder, error) {
	if !cfg.Enabled {
		return NewNoOp(), nil
	}
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		return NewNoOp(), err
	}
	return exp, nil
}
