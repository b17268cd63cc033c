/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openailm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/metrics"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/sethvargo/go-envconfig"
)

// Backend is the name the adapter is registered under.
const Backend = "openai"

// ResponseCreator is the slice of the OpenAI client the adapter uses.
type ResponseCreator interface {
	New(ctx context.Context, body responses.ResponseNewParams, opts ...option.RequestOption) (*responses.Response, error)
}

// config holds the credential read from the environment
type config struct {
	APIKey string `env:"OPENAI_API_KEY,required"`
}

// LM is the OpenAI adapter
type LM struct {
	lm.HostedOnly

	responses ResponseCreator
	apiKey    string
	defaults  lm.Defaults
	hook      lm.CacheHook
	lookuper  envconfig.Lookuper
	baseURL   string
	metrics   *metrics.GenAI
}

var (
	_ lm.Model     = (*LM)(nil)
	_ lm.Backend   = (*LM)(nil)
	_ lm.Generator = (*LM)(nil)
)

// Option is a functional option for configuring the adapter
type Option func(*LM) error

// WithModel sets the model name
func WithModel(model string) Option {
	return func(l *LM) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		l.defaults.Model = model
		return nil
	}
}

// WithMaxTokens sets the default maximum output tokens
func WithMaxTokens(tokens int64) Option {
	return func(l *LM) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		l.defaults.MaxTokens = tokens
		return nil
	}
}

// WithTemperature sets the default temperature (0.0 to 2.0)
func WithTemperature(temp float64) Option {
	return func(l *LM) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		l.defaults.Temperature = temp
		return nil
	}
}

// WithTopP sets the default nucleus sampling threshold
func WithTopP(topP float64) Option {
	return func(l *LM) error {
		if topP < 0.0 || topP > 1.0 {
			return fmt.Errorf("top_p must be between 0.0 and 1.0, got %f", topP)
		}
		l.defaults.TopP = topP
		return nil
	}
}

// WithCacheHook sets the sink that receives every completion
func WithCacheHook(hook lm.CacheHook) Option {
	return func(l *LM) error {
		if hook == nil {
			return errors.New("cache hook cannot be nil")
		}
		l.hook = hook
		return nil
	}
}

// WithLookuper sets where the API key is read from. Defaults to the process environment.
func WithLookuper(lookuper envconfig.Lookuper) Option {
	return func(l *LM) error {
		if lookuper == nil {
			return errors.New("lookuper cannot be nil")
		}
		l.lookuper = lookuper
		return nil
	}
}

// WithBaseURL points the client at a different API host
func WithBaseURL(url string) Option {
	return func(l *LM) error {
		if url == "" {
			return errors.New("base URL cannot be empty")
		}
		l.baseURL = url
		return nil
	}
}

// WithClient substitutes the Responses API client
func WithClient(client ResponseCreator) Option {
	return func(l *LM) error {
		if client == nil {
			return errors.New("client cannot be nil")
		}
		l.responses = client
		return nil
	}
}

// New creates an OpenAI adapter. The API key is read exactly once, here.
func New(ctx context.Context, opts ...Option) (*LM, error) {
	l := &LM{
		HostedOnly: lm.HostedOnly{Backend: Backend},
		defaults: lm.Defaults{
			Model:       "gpt-4o-mini",
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
	if err := lm.RequireKey(lm.OpenAIAPIKeyEnv, cfg.APIKey); err != nil {
		return nil, err
	}
	l.apiKey = cfg.APIKey

	if l.responses == nil {
		clientOpts := []option.RequestOption{
			option.WithAPIKey(l.apiKey),
			option.WithMaxRetries(0),
		}
		if l.baseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(l.baseURL))
		}
		client := openai.NewClient(clientOpts...)
		l.responses = &client.Responses
	}

	clog.FromContext(ctx).With("model", l.defaults.Model).Info("Created OpenAI adapter")
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
	return params, nil
}

// Complete implements lm.Backend
func (l *LM) Complete(ctx context.Context, prompt string, params lm.Resolved) (string, error) {
	resp, err := l.responses.New(ctx, responses.ResponseNewParams{
		Model:           shared.ResponsesModel(params.Model),
		Input:           responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
		MaxOutputTokens: openai.Int(params.MaxTokens),
		Temperature:     openai.Float(params.Temperature),
		TopP:            openai.Float(params.TopP),
	})
	if err != nil {
		l.metrics.RecordRequest(ctx, params.Model, "error")
		return "", fmt.Errorf("openai responses call: %w", err)
	}
	if resp != nil {
		l.metrics.RecordTokens(ctx, params.Model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}

	text := truncateAtStop(extractText(resp), params.StopSequences)
	if text == "" {
		l.metrics.RecordRequest(ctx, params.Model, "empty")
		return "", nil
	}
	l.metrics.RecordRequest(ctx, params.Model, "ok")
	return text, nil
}

// extractText concatenates the output_text parts of every message item, or
// returns "" when there are none.
func extractText(resp *responses.Response) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				sb.WriteString(content.Text)
			}
		}
	}
	return sb.String()
}

// truncateAtStop cuts text at the earliest occurrence of any stop sequence.
func truncateAtStop(text string, stops []string) string {
	cut := len(text)
	for _, stop := range stops {
		if i := strings.Index(text, stop); i >= 0 && i < cut {
			cut = i
		}
	}
	return text[:cut]
}
