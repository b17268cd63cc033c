/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "chainguard.jawaher.evals"

// Span wraps the OpenTelemetry span of one task evaluation.
type Span struct {
	span oteltrace.Span
}

// StartSpan starts the span of a task evaluation.
func StartSpan(ctx context.Context, task, model string) (context.Context, *Span) {
	tr := otel.Tracer(tracerName, oteltrace.WithInstrumentationVersion("1.0.0"))
	ctx, span := tr.Start(ctx, "task.evaluate", oteltrace.WithAttributes(
		attribute.String("task", task),
		attribute.String("model", model),
	))
	return ctx, &Span{span: span}
}

// End closes the span, recording the metric scores or the failure.
func (s *Span) End(result *TaskResult, err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else if result != nil {
		s.span.SetAttributes(attribute.Int("instances", result.N))
		for _, m := range result.Metrics {
			s.span.SetAttributes(attribute.Float64("metric."+m.Name, m.Score))
		}
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
