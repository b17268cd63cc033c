/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"fmt"

	"chainguard.dev/jawaher/agents/judge"
	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/lm/claudelm"
	"chainguard.dev/jawaher/agents/lm/geminilm"
	"chainguard.dev/jawaher/agents/lm/openailm"
	"chainguard.dev/jawaher/scoring"
	"chainguard.dev/jawaher/scoring/bertscore"
)

// newModel builds the adapter for backend. An empty model keeps the
// adapter default.
func newModel(ctx context.Context, backend, model string, hook lm.CacheHook) (lm.Model, error) {
	switch backend {
	case claudelm.Backend:
		opts := []claudelm.Option{claudelm.WithCacheHook(hook)}
		if model != "" {
			opts = append(opts, claudelm.WithModel(model))
		}
		m, err := claudelm.New(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case geminilm.Backend:
		opts := []geminilm.Option{geminilm.WithCacheHook(hook)}
		if model != "" {
			opts = append(opts, geminilm.WithModel(model))
		}
		m, err := geminilm.New(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case openailm.Backend:
		opts := []openailm.Option{openailm.WithCacheHook(hook)}
		if model != "" {
			opts = append(opts, openailm.WithModel(model))
		}
		m, err := openailm.New(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s, %s or %s)", backend, claudelm.Backend, geminilm.Backend, openailm.Backend)
	}
}

// scoringDependencies defers every hosted client until a task asks for the
// metric that needs it, so credentials for unused judges are never required.
func scoringDependencies(claudeJudgeModel, openAIJudgeModel, embeddingModel string) scoring.Dependencies {
	return scoring.Dependencies{
		ClaudeJudge: func(ctx context.Context) (judge.Interface, error) {
			var opts []claudelm.Option
			if claudeJudgeModel != "" {
				opts = append(opts, claudelm.WithModel(claudeJudgeModel))
			}
			return judge.NewClaude(ctx, opts...)
		},
		OpenAIJudge: func(ctx context.Context) (judge.Interface, error) {
			var opts []openailm.Option
			if openAIJudgeModel != "" {
				opts = append(opts, openailm.WithModel(openAIJudgeModel))
			}
			return judge.NewOpenAI(ctx, opts...)
		},
		Encoder: func(ctx context.Context) (bertscore.Encoder, error) {
			var opts []bertscore.GeminiOption
			if embeddingModel != "" {
				opts = append(opts, bertscore.WithEmbeddingModel(embeddingModel))
			}
			enc, err := bertscore.NewGeminiEncoder(ctx, opts...)
			if err != nil {
				return nil, err
			}
			return enc, nil
		},
	}
}
