/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/lm/claudelm"
	"chainguard.dev/jawaher/agents/lm/openailm"
	"github.com/chainguard-dev/clog"
)

// judge implements Interface over any single-call generator.
type judge struct {
	gen     lm.Generator
	options lm.Options
}

var _ Interface = (*judge)(nil)

// Option configures a judge.
type Option func(*judge) error

// WithMaxTokens bounds the length of the judge reply.
func WithMaxTokens(tokens int64) Option {
	return func(j *judge) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		j.options.MaxGenToks = &tokens
		return nil
	}
}

// New creates a judge that sends its rubric prompts through gen.
func New(gen lm.Generator, opts ...Option) (Interface, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	j := &judge{
		gen: gen,
		options: lm.Options{
			MaxGenToks:  lm.Ptr[int64](16),
			Temperature: lm.Ptr(0.0),
		},
	}
	for _, opt := range opts {
		if err := opt(j); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return j, nil
}

// NewClaude creates a judge backed by the Claude adapter.
func NewClaude(ctx context.Context, opts ...claudelm.Option) (Interface, error) {
	model, err := claudelm.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating claude judge: %w", err)
	}
	return New(model)
}

// NewOpenAI creates a judge backed by the OpenAI adapter.
func NewOpenAI(ctx context.Context, opts ...openailm.Option) (Interface, error) {
	model, err := openailm.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating openai judge: %w", err)
	}
	return New(model)
}

// NewForModel picks the vendor from the model name: claude-* models use
// Anthropic, everything else uses OpenAI.
func NewForModel(ctx context.Context, model string) (Interface, error) {
	if strings.HasPrefix(strings.ToLower(model), "claude-") {
		return NewClaude(ctx, claudelm.WithModel(model))
	}
	return NewOpenAI(ctx, openailm.WithModel(model))
}

// Rate implements Interface
func (j *judge) Rate(ctx context.Context, prediction, reference string) (int, error) {
	p, err := request{Prediction: prediction, Reference: reference}.Bind(rubricPrompt)
	if err != nil {
		return 0, fmt.Errorf("binding rubric: %w", err)
	}
	prompt, err := p.Build()
	if err != nil {
		return 0, fmt.Errorf("building rubric: %w", err)
	}

	reply, err := j.gen.Generate(ctx, lm.Request{Prompt: prompt, Options: j.options})
	if err != nil {
		return 0, fmt.Errorf("judge call: %w", err)
	}
	rating, err := ParseRating(reply)
	if err != nil {
		return 0, err
	}
	clog.FromContext(ctx).With("rating", rating).Debug("Judge rated prediction")
	return rating, nil
}
