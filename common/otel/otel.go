package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer resolves through the global provider, so spans are no-ops until the
// command wiring installs a real provider.
var Tracer trace.Tracer = otel.Tracer("ticket-scan")
