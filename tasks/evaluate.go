/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tasks

import (
	"context"
	"fmt"
	"strings"

	"chainguard.dev/jawaher/agents/evals"
	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/metrics"
	"chainguard.dev/jawaher/scoring"
	"github.com/chainguard-dev/clog"
)

// EvalOptions control a single Evaluate call.
type EvalOptions struct {
	// Model labels the result.
	Model string
	// LogSamples keeps every prompt, target and prediction in the result.
	LogSamples bool
	// DisableProgress silences per-request progress logging.
	DisableProgress bool
}

// Evaluate runs one task end to end.
func Evaluate(ctx context.Context, model lm.Model, spec Spec, cfg Config, registry *scoring.Registry, opts EvalOptions) (result evals.TaskResult, err error) {
	cfg = cfg.Merge(spec.Defaults())
	cfg.Task = spec.Name()
	if err := cfg.Validate(); err != nil {
		return evals.TaskResult{}, fmt.Errorf("task %s: %w", spec.Name(), err)
	}

	ctx = metrics.WithTask(ctx, spec.Name())
	ctx, span := evals.StartSpan(ctx, spec.Name(), opts.Model)
	defer func() { span.End(&result, err) }()

	log := clog.FromContext(ctx).With("task", spec.Name())
	ctx = clog.WithLogger(ctx, log)

	// Resolve metrics first so a typo fails before any model call.
	var ms []scoring.Metric
	for _, name := range cfg.Metrics() {
		m, err := registry.Get(ctx, name)
		if err != nil {
			return evals.TaskResult{}, fmt.Errorf("task %s: %w", spec.Name(), err)
		}
		ms = append(ms, m)
	}

	instances, err := spec.Build(ctx, cfg)
	if err != nil {
		return evals.TaskResult{}, fmt.Errorf("task %s: building instances: %w", spec.Name(), err)
	}
	log.With("instances", len(instances)).Info("Built task instances")

	requests := make([]lm.Request, len(instances))
	for i, inst := range instances {
		requests[i] = inst.Request(cfg.GenerationKwargs)
	}
	predictions, err := model.GenerateUntil(ctx, requests, opts.DisableProgress)
	if err != nil {
		return evals.TaskResult{}, fmt.Errorf("task %s: generating: %w", spec.Name(), err)
	}
	if len(predictions) != len(instances) {
		return evals.TaskResult{}, fmt.Errorf("task %s: model returned %d predictions for %d requests", spec.Name(), len(predictions), len(instances))
	}

	scored := predictions
	if cfg.FirstLineOnly != nil && *cfg.FirstLineOnly {
		scored = make([]string, len(predictions))
		for i, p := range predictions {
			scored[i] = FirstLine(p)
		}
	}

	samples := make([]scoring.Sample, len(instances))
	for i, inst := range instances {
		samples[i] = scoring.Sample{Prediction: scored[i], Reference: inst.Target, Doc: inst.Doc}
	}

	result = evals.TaskResult{Task: spec.Name(), Model: opts.Model, N: len(instances)}
	for _, m := range ms {
		mr, err := m.Compute(ctx, samples)
		if err != nil {
			return evals.TaskResult{}, fmt.Errorf("task %s: %w", spec.Name(), err)
		}
		log.With("metric", mr.Name).With("score", mr.Score).Info("Scored task")
		result.Metrics = append(result.Metrics, mr)
	}

	if opts.LogSamples {
		result.Samples = make([]evals.Sample, len(instances))
		for i, inst := range instances {
			result.Samples[i] = evals.Sample{
				ID:         inst.ID,
				Prompt:     inst.Prompt,
				Target:     inst.Target,
				Prediction: predictions[i],
				Scored:     scored[i],
			}
		}
	}
	return result, nil
}

// FirstLine returns the first line of s that is not blank, trimmed. Hosted
// APIs reject whitespace-only stop sequences, so short-answer tasks cut the
// completion here instead.
func FirstLine(s string) string {
	for line := range strings.Lines(s) {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
