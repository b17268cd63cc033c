/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package geminilm

import (
	"context"
	"fmt"

	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/metrics"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"google.golang.org/genai"
)

// Backend is the name the adapter is registered under.
const Backend = "gemini"

// maxOutputTokens is the largest output budget the adapter accepts.
const maxOutputTokens = 32768

// ContentGenerator is the slice of the genai client the adapter uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// config holds the credential read from the environment
type config struct {
	APIKey string `env:"GEMINI_API_KEY,required"`
}

// LM is the Gemini adapter
type LM struct {
	lm.HostedOnly

	models   ContentGenerator
	apiKey   string
	defaults lm.Defaults
	hook     lm.CacheHook
	lookuper envconfig.Lookuper
	baseURL  string
	metrics  *metrics.GenAI
}

var (
	_ lm.Model     = (*LM)(nil)
	_ lm.Backend   = (*LM)(nil)
	_ lm.Generator = (*LM)(nil)
)

// New creates a Gemini adapter. The API key is read exactly once, here.
func New(ctx context.Context, opts ...Option) (*LM, error) {
	topK := 1.0
	l := &LM{
		HostedOnly: lm.HostedOnly{Backend: Backend},
		defaults: lm.Defaults{
			Model:       "gemini-1.5-flash",
			MaxTokens:   128,
			Temperature: 0.0,
			TopP:        1.0,
			TopK:        &topK,
		},
		hook:    lm.NopCacheHook{},
		metrics: metrics.NewGenAI(metrics.MeterName),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	var cfg config
	if err := lm.LoadCredentials(ctx, l.lookuper, &cfg); err != nil {
		return nil, err
	}
	if err := lm.RequireKey(lm.GeminiAPIKeyEnv, cfg.APIKey); err != nil {
		return nil, err
	}
	l.apiKey = cfg.APIKey

	if l.models == nil {
		clientConfig := &genai.ClientConfig{
			APIKey:  l.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if l.baseURL != "" {
			clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: l.baseURL}
		}
		client, err := genai.NewClient(ctx, clientConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		l.models = client.Models
	}

	clog.FromContext(ctx).With("model", l.defaults.Model).
		With("max_tokens", l.defaults.MaxTokens).
		Info("Created Gemini adapter")
	return l, nil
}

// GenerateUntil implements lm.Model
func (l *LM) GenerateUntil(ctx context.Context, requests []lm.Request, disableProgress bool) ([]string, error) {
	return lm.GenerateUntil(ctx, l, l.hook, Backend, requests, disableProgress)
}

// Generate implements lm.Generator
func (l *LM) Generate(ctx context.Context, request lm.Request) (string, error) {
	return lm.Generate(ctx, l, request)
}

// Resolve implements lm.Backend
func (l *LM) Resolve(opts lm.Options) (lm.Resolved, error) {
	params := l.defaults.Resolve(opts)
	if err := params.Validate(); err != nil {
		return params, err
	}
	if params.Temperature > 2.0 {
		return params, fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", params.Temperature)
	}
	if params.MaxTokens > maxOutputTokens {
		return params, fmt.Errorf("max output tokens %d exceeds maximum of %d", params.MaxTokens, maxOutputTokens)
	}
	return params, nil
}

// Complete implements lm.Backend
func (l *LM) Complete(ctx context.Context, prompt string, params lm.Resolved) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(params.MaxTokens),
		Temperature:     ptr(float32(params.Temperature)),
		TopP:            ptr(float32(params.TopP)),
	}
	if params.TopK != nil {
		config.TopK = ptr(float32(*params.TopK))
	}
	if len(params.StopSequences) > 0 {
		config.StopSequences = params.StopSequences
	}

	response, err := l.models.GenerateContent(ctx, params.Model, genai.Text(prompt), config)
	if err != nil {
		l.metrics.RecordRequest(ctx, params.Model, "error")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if response != nil && response.UsageMetadata != nil {
		l.metrics.RecordTokens(ctx, params.Model,
			int64(response.UsageMetadata.PromptTokenCount),
			int64(response.UsageMetadata.CandidatesTokenCount))
	}

	text := extractText(response)
	if text == "" {
		clog.FromContext(ctx).With("model", params.Model).
			Warn("Gemini response carried no text part")
		l.metrics.RecordRequest(ctx, params.Model, "empty")
		return "", nil
	}
	l.metrics.RecordRequest(ctx, params.Model, "ok")
	return text, nil
}

// extractText returns the text of the first part of the first candidate, or
// "" when any step of that path is missing.
func extractText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 {
		return ""
	}
	candidate := response.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	part := candidate.Content.Parts[0]
	if part == nil {
		return ""
	}
	return part.Text
}

// ptr is a helper function to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
