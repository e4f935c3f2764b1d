package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "nba-pmi-engine"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	meter             metric.Meter
	rowsScored        metric.Int64Counter
	imputations       metric.Int64Counter
	summaries         metric.Int64Counter
	trainingRuns      metric.Int64Counter
	trainingErrors    metric.Int64Counter
	trainingRows      metric.Int64Counter
	trainingLatencyMs metric.Float64Histogram
	pipelineRuns      metric.Int64Counter
	pipelineErrors    metric.Int64Counter
	pipelineLatencyMs metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("nba-pmi-engine")
	ctx := context.Background()

	rowsScored, err := meter.Int64Counter("pmi_rows_scored_total")
	if err != nil {
		return nil, err
	}
	imputations, err := meter.Int64Counter("pmi_imputations_total")
	if err != nil {
		return nil, err
	}
	summaries, err := meter.Int64Counter("pmi_career_summaries_total")
	if err != nil {
		return nil, err
	}

	trainingRuns, err := meter.Int64Counter("imputer_training_runs_total")
	if err != nil {
		return nil, err
	}
	trainingErrors, err := meter.Int64Counter("imputer_training_errors_total")
	if err != nil {
		return nil, err
	}
	trainingRows, err := meter.Int64Counter("imputer_training_rows_total")
	if err != nil {
		return nil, err
	}
	trainingLatency, err := meter.Float64Histogram("imputer_training_duration_ms")
	if err != nil {
		return nil, err
	}

	pipelineRuns, err := meter.Int64Counter("pipeline_runs_total")
	if err != nil {
		return nil, err
	}
	pipelineErrors, err := meter.Int64Counter("pipeline_errors_total")
	if err != nil {
		return nil, err
	}
	pipelineLatency, err := meter.Float64Histogram("pipeline_run_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		meter:             meter,
		rowsScored:        rowsScored,
		imputations:       imputations,
		summaries:         summaries,
		trainingRuns:      trainingRuns,
		trainingErrors:    trainingErrors,
		trainingRows:      trainingRows,
		trainingLatencyMs: trainingLatency,
		pipelineRuns:      pipelineRuns,
		pipelineErrors:    pipelineErrors,
		pipelineLatencyMs: pipelineLatency,
	}, nil
}

func (o *otelInstruments) recordRowsScored(generation string, n int) {
	if o == nil {
		return
	}
	o.recordCounter(o.rowsScored, int64(n), attribute.String(AttrGeneration, generation))
}

func (o *otelInstruments) recordImputations(generation string, n int) {
	if o == nil {
		return
	}
	o.recordCounter(o.imputations, int64(n), attribute.String(AttrGeneration, generation))
}

func (o *otelInstruments) recordSummaries(generation string, n int) {
	if o == nil {
		return
	}
	o.recordCounter(o.summaries, int64(n), attribute.String(AttrGeneration, generation))
}

func (o *otelInstruments) recordTraining(duration time.Duration, rows int, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.trainingRuns, 1)
	o.recordCounter(o.trainingRows, int64(rows))
	o.recordHistogram(o.trainingLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.trainingErrors, 1)
	}
}

func (o *otelInstruments) recordRun(generation string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrGeneration, generation)}
	o.recordCounter(o.pipelineRuns, 1, attrs...)
	o.recordHistogram(o.pipelineLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.pipelineErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
