/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudelm

import (
	"context"
	"fmt"

	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/metrics"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

// Backend is the name the adapter is registered under.
const Backend = "claude"

// MessageCreator is the slice of the Anthropic client the adapter uses.
type MessageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// config holds the credential read from the environment
type config struct {
	APIKey string `env:"ANTHROPIC_API_KEY,required"`
}

// LM is the Claude adapter
type LM struct {
	lm.HostedOnly

	messages MessageCreator
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

// New creates a Claude adapter. The API key is read exactly once, here.
func New(ctx context.Context, opts ...Option) (*LM, error) {
	l := &LM{
		HostedOnly: lm.HostedOnly{Backend: Backend},
		defaults: lm.Defaults{
			Model:       "claude-3-opus-20240229",
			MaxTokens:   128,
			Temperature: 0.0,
			TopP:        1.0,
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
	if err := lm.RequireKey(lm.AnthropicAPIKeyEnv, cfg.APIKey); err != nil {
		return nil, err
	}
	l.apiKey = cfg.APIKey

	if l.messages == nil {
		clientOpts := []option.RequestOption{
			option.WithAPIKey(l.apiKey),
			option.WithMaxRetries(0),
		}
		if l.baseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(l.baseURL))
		}
		client := anthropic.NewClient(clientOpts...)
		l.messages = &client.Messages
	}

	clog.FromContext(ctx).With("model", l.defaults.Model).
		With("max_tokens", l.defaults.MaxTokens).
		Info("Created Claude adapter")
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
	if params.Temperature > 1.0 {
		return params, fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", params.Temperature)
	}
	return params, nil
}

// Complete implements lm.Backend
func (l *LM) Complete(ctx context.Context, prompt string, params lm.Resolved) (string, error) {
	body := anthropic.MessageNewParams{
		Model:       anthropic.Model(params.Model),
		MaxTokens:   params.MaxTokens,
		Temperature: anthropic.Float(params.Temperature),
		TopP:        anthropic.Float(params.TopP),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if len(params.StopSequences) > 0 {
		body.StopSequences = params.StopSequences
	}

	message, err := l.messages.New(ctx, body)
	if err != nil {
		l.metrics.RecordRequest(ctx, params.Model, "error")
		return "", fmt.Errorf("claude messages call: %w", err)
	}

	if message != nil && (message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0) {
		l.metrics.RecordTokens(ctx, params.Model, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	text := extractText(message)
	if text == "" {
		clog.FromContext(ctx).With("model", params.Model).
			Warn("Claude response carried no text content")
		l.metrics.RecordRequest(ctx, params.Model, "empty")
		return "", nil
	}
	l.metrics.RecordRequest(ctx, params.Model, "ok")
	return text, nil
}

// extractText returns the text of the first content block, or "" when the
// message has no text block.
func extractText(message *anthropic.Message) string {
	if message == nil {
		return ""
	}
	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}
