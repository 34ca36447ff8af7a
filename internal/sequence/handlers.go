package sequence

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-sequence-api/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the sequence domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("sequence")

// Generate handles POST /sequences/generate — the sequence type travels in
// the request body.
func Generate(maxTerms int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGenerate(w, r, "", maxTerms)
	}
}

// Arithmetic handles POST /sequences/arithmetic.
func Arithmetic(maxTerms int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGenerate(w, r, KindArithmetic, maxTerms)
	}
}

// Geometric handles POST /sequences/geometric.
func Geometric(maxTerms int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleGenerate(w, r, KindGeometric, maxTerms)
	}
}

// handleGenerate is the shared implementation for all sequence endpoints:
// decode, validate against the configured bound, compute, record telemetry,
// respond. presetKind overrides the body's type for the typed routes.
func handleGenerate(w http.ResponseWriter, r *http.Request, presetKind string, maxTerms int) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	opName := presetKind
	if opName == "" {
		opName = "generate"
	}

	ctx, span := tracer.Start(ctx, fmt.Sprintf("sequence.%s", opName),
		trace.WithAttributes(
			attribute.String("sequence.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if presetKind != "" {
		req.Type = presetKind
	}

	if err := ValidateRequest(&req, maxTerms); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("sequence.type", req.Type),
		attribute.Float64("sequence.first_term", req.FirstTerm),
		attribute.Float64("sequence.step", req.Step),
		attribute.Int("sequence.term_count", req.TermCount),
	)

	start := time.Now()
	resp := Compute(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(attribute.String("type", req.Type))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	termsHistogram.Record(ctx, int64(req.TermCount), attrs)
	sumGauge.Record(ctx, resp.SumByFormula, attrs)

	span.AddEvent("sequence.generated", trace.WithAttributes(
		attribute.Float64("last_term", resp.LastTerm),
		attribute.Float64("sum", resp.SumByFormula),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("sequence.sum", resp.SumByFormula))
	span.SetStatus(codes.Ok, "")

	logger.Info("sequence generated",
		zap.String("type", req.Type),
		zap.Float64("first_term", req.FirstTerm),
		zap.Float64("step", req.Step),
		zap.Int("term_count", req.TermCount),
		zap.Float64("last_term", resp.LastTerm),
		zap.Float64("sum", resp.SumByFormula),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
