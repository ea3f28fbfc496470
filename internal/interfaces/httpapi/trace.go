package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("courtside/internal/interfaces/httpapi")

// routeParams are copied onto handler spans when the route declares them.
var routeParams = []string{"leagueID", "teamID", "playerID"}

// startHandlerSpan is a no-op for requests the tracing middleware filtered
// out, such as health probes.
func startHandlerSpan(r *http.Request, handler string) (context.Context, trace.Span) {
	ctx := r.Context()
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, "httpapi.Handler."+handler, trace.WithAttributes(routeAttributes(r)...))
}

func routeAttributes(r *http.Request) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(routeParams))
	for _, name := range routeParams {
		if value := r.PathValue(name); value != "" {
			attrs = append(attrs, attribute.String("courtside.route."+name, value))
		}
	}
	return attrs
}
