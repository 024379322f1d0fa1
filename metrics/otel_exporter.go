package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter            metric.Meter
	bookCountGauge   metric.Int64ObservableGauge
	uploadCountGauge metric.Int64ObservableGauge
	uploadBytesGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"bookstore-catalog",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.bookCountGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.books.total",
		metric.WithDescription("Number of books in the catalog"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeBookCount),
	)
	if err != nil {
		return fmt.Errorf("creating book count gauge: %w", err)
	}

	oe.uploadCountGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.uploads.total",
		metric.WithDescription("Number of stored cover image files"),
		metric.WithUnit("{files}"),
		metric.WithInt64Callback(oe.observeUploadCount),
	)
	if err != nil {
		return fmt.Errorf("creating upload count gauge: %w", err)
	}

	oe.uploadBytesGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.uploads.bytes",
		metric.WithDescription("Total size of stored cover image files"),
		metric.WithUnit("By"),
		metric.WithInt64Callback(oe.observeUploadBytes),
	)
	if err != nil {
		return fmt.Errorf("creating upload bytes gauge: %w", err)
	}

	return nil
}

// observeBookCount is a callback that reports the catalog size
func (oe *OTelExporter) observeBookCount(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetBookCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(count)
	return nil
}

// observeUploadCount is a callback that reports the number of stored files
func (oe *OTelExporter) observeUploadCount(ctx context.Context, observer metric.Int64Observer) error {
	files, _, err := oe.collector.GetUploadStats(ctx)
	if err != nil {
		return err
	}
	observer.Observe(files)
	return nil
}

// observeUploadBytes is a callback that reports the total stored size
func (oe *OTelExporter) observeUploadBytes(ctx context.Context, observer metric.Int64Observer) error {
	_, bytes, err := oe.collector.GetUploadStats(ctx)
	if err != nil {
		return err
	}
	observer.Observe(bytes)
	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
