package otel_test

import (
	"context"
	"errors"
	"testing"

	"petcare/config"
	"petcare/infras/otel"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "petcare-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Create")
	defer scope.End()

	span := oteltrace.SpanFromContext(ctx)
	assert.True(t, span.SpanContext().IsValid())

	scope.SetAttributes(map[string]any{
		"booking.slot":  "10:00",
		"booking.pets":  []string{"p-1", "p-2"},
		"booking.count": 2,
		"booking.ok":    true,
	})
	scope.AddEvent("admitted")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("slot already booked"))
}
