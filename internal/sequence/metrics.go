package sequence

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	opsCounter     metric.Int64Counter
	opsHistogram   metric.Float64Histogram
	errorCounter   metric.Int64Counter
	termsHistogram metric.Int64Histogram
	sumGauge       metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the sequence
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("sequence")

	var err error

	opsCounter, err = meter.Int64Counter("sequence.operations.total",
		metric.WithDescription("Total number of sequences generated"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("sequence.generation.duration",
		metric.WithDescription("Duration of sequence generation in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("sequence.errors.total",
		metric.WithDescription("Total number of rejected sequence requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	termsHistogram, err = meter.Int64Histogram("sequence.terms.count",
		metric.WithDescription("Number of terms requested per generation"),
		metric.WithUnit("{term}"),
		metric.WithExplicitBucketBoundaries(1, 10, 50, 100, 250, 500, 1000),
	)
	if err != nil {
		return fmt.Errorf("creating terms histogram: %w", err)
	}

	sumGauge, err = meter.Float64Gauge("sequence.last_sum",
		metric.WithDescription("The series sum of the last generated sequence"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating sum gauge: %w", err)
	}

	return nil
}
