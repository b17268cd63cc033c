/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lm

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
)

var (
	// ErrNotSupported is returned by backends asked for log-likelihoods,
	// logits or raw tokens they cannot provide. It signals a capability
	// mismatch and is never worth retrying.
	ErrNotSupported = errors.New("not supported by this backend")

	// ErrMissingCredential is returned when an adapter's API key is not set.
	ErrMissingCredential = errors.New("missing credential")
)

// LoglikelihoodRequest asks for the log-probability of Continuation given Context.
type LoglikelihoodRequest struct {
	Context      string
	Continuation string
}

// LoglikelihoodResult is the answer to a LoglikelihoodRequest.
type LoglikelihoodResult struct {
	LogProb  float64
	IsGreedy bool
}

// Model is the interface the harness drives.
type Model interface {
	// GenerateUntil returns one completion per request, in request order.
	GenerateUntil(ctx context.Context, requests []Request, disableProgress bool) ([]string, error)
	// Loglikelihood scores continuations.
	Loglikelihood(ctx context.Context, requests []LoglikelihoodRequest) ([]LoglikelihoodResult, error)
	// LoglikelihoodRolling scores whole strings.
	LoglikelihoodRolling(ctx context.Context, requests []Request) ([]float64, error)
	// TokEncode converts text into token ids.
	TokEncode(text string) ([]int, error)
	// TokDecode converts token ids into text.
	TokDecode(tokens []int) (string, error)
}

// Backend is the vendor-specific half of an adapter.
type Backend interface {
	// Resolve merges request options over the adapter defaults and
	// validates the result.
	Resolve(opts Options) (Resolved, error)
	// Complete performs exactly one vendor call. A response that lacks the
	// expected structure yields "" rather than an error.
	Complete(ctx context.Context, prompt string, params Resolved) (string, error)
}

// Generator issues a single generation call.
type Generator interface {
	Generate(ctx context.Context, request Request) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, request Request) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, request Request) (string, error) {
	return f(ctx, request)
}

// Generate resolves the request options and performs one call on b.
func Generate(ctx context.Context, b Backend, request Request) (string, error) {
	params, err := b.Resolve(request.Options)
	if err != nil {
		return "", err
	}
	return b.Complete(ctx, request.Prompt, params)
}

// HostedOnly implements the Model members that a text-only hosted API cannot
// serve. Embed it in adapters.
type HostedOnly struct {
	// Backend names the adapter in error messages.
	Backend string
}

func (h HostedOnly) unsupported(what string) error {
	return fmt.Errorf("%s: %s: %w", h.Backend, what, ErrNotSupported)
}

// Loglikelihood implements Model.
func (h HostedOnly) Loglikelihood(context.Context, []LoglikelihoodRequest) ([]LoglikelihoodResult, error) {
	return nil, h.unsupported("loglikelihood (the API does not return logprobs)")
}

// LoglikelihoodRolling implements Model.
func (h HostedOnly) LoglikelihoodRolling(context.Context, []Request) ([]float64, error) {
	return nil, h.unsupported("loglikelihood_rolling (the API does not return logprobs)")
}

// TokEncode implements Model.
func (h HostedOnly) TokEncode(string) ([]int, error) {
	return nil, h.unsupported("token encoding")
}

// TokDecode implements Model.
func (h HostedOnly) TokDecode([]int) (string, error) {
	return "", h.unsupported("token decoding")
}

// Logits always fails: hosted APIs do not expose logits.
func (h HostedOnly) Logits(context.Context, []string) ([][]float64, error) {
	return nil, h.unsupported("logits")
}

// Validate rejects parameter combinations no vendor accepts.
func (r Resolved) Validate() error {
	if r.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", r.MaxTokens)
	}
	if r.Temperature < 0 {
		return fmt.Errorf("temperature must not be negative, got %f", r.Temperature)
	}
	if r.TopP < 0 || r.TopP > 1 {
		return fmt.Errorf("top_p must be between 0.0 and 1.0, got %f", r.TopP)
	}
	if len(r.StopSequences) > MaxStopSequences {
		return fmt.Errorf("at most %d stop sequences are allowed, got %d", MaxStopSequences, len(r.StopSequences))
	}
	return nil
}

// GenerateUntil runs requests through b one at a time, in order. Each result
// is recorded in hook as soon as it arrives, keyed by the prompt and the
// resolved parameters. An empty batch performs no calls. The first error
// aborts the batch.
func GenerateUntil(ctx context.Context, b Backend, hook CacheHook, backend string, requests []Request, disableProgress bool) ([]string, error) {
	if len(requests) == 0 {
		return []string{}, nil
	}
	if hook == nil {
		hook = NopCacheHook{}
	}
	log := clog.FromContext(ctx).With("backend", backend)

	results := make([]string, 0, len(requests))
	for i, req := range requests {
		params, err := b.Resolve(req.Options)
		if err != nil {
			return nil, fmt.Errorf("request %d of %d: %w", i+1, len(requests), err)
		}
		text, err := b.Complete(ctx, req.Prompt, params)
		if err != nil {
			return nil, fmt.Errorf("request %d of %d: %w", i+1, len(requests), err)
		}
		results = append(results, text)
		hook.AddPartial(GenerateUntilKind, CacheKey{Prompt: req.Prompt, Options: params}, text)

		if !disableProgress {
			log.With("done", i+1).
				With("total", len(requests)).
				With("output_length", len(text)).
				Info("Generated completion")
		}
	}
	return results, nil
}
