/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// AttributeEnricher adds contextual attributes to the base attributes
// (model, outcome) of every recorded point.
type AttributeEnricher func(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue

type taskKey struct{}

// WithTask records the evaluation task name in ctx.
func WithTask(ctx context.Context, task string) context.Context {
	return context.WithValue(ctx, taskKey{}, task)
}

// TaskFromContext returns the task stored by WithTask, or "".
func TaskFromContext(ctx context.Context) string {
	task, _ := ctx.Value(taskKey{}).(string)
	return task
}

// TaskEnricher appends a "task" attribute when the context carries one.
func TaskEnricher(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	if task := TaskFromContext(ctx); task != "" {
		return append(baseAttrs, attribute.String("task", task))
	}
	return baseAttrs
}
