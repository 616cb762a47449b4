// Package telemetry configures OpenTelemetry tracing for this module.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/warblr/go/logging"
)

var logger = logging.New("telemetry")

func init() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		logger.Warn("traces will not be exported via OTLP (OTEL_EXPORTER_OTLP_ENDPOINT is not set)")
		return
	}

	configureTracerProvider()
}

// Shutdown flushes any pending spans. Call it before process exit.
func Shutdown(ctx context.Context) error {
	if tp, ok := otel.GetTracerProvider().(*trace.TracerProvider); ok && tp != nil {
		return tp.Shutdown(ctx)
	}
	return nil
}
