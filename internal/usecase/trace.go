package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("courtside/internal/usecase")

// startUsecaseSpan opens a child span only when the request is already
// traced; health checks and tests run without a parent and get a no-op span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func leagueAttr(leagueID string) attribute.KeyValue {
	return attribute.String("courtside.league_id", leagueID)
}

func teamAttr(teamID int64) attribute.KeyValue {
	return attribute.Int64("courtside.team_id", teamID)
}
