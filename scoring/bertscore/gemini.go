/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package bertscore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/jawaher/agents/lm"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is the Gemini model used when none is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// Embedder is the slice of the genai client the encoder uses.
type Embedder interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

type geminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY,required"`
}

// GeminiEncoder embeds each whitespace token of a text with Gemini.
type GeminiEncoder struct {
	models   Embedder
	model    string
	lookuper envconfig.Lookuper
}

var _ Encoder = (*GeminiEncoder)(nil)

// GeminiOption configures a GeminiEncoder.
type GeminiOption func(*GeminiEncoder) error

// WithEmbeddingModel sets the embedding model.
func WithEmbeddingModel(model string) GeminiOption {
	return func(e *GeminiEncoder) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		e.model = model
		return nil
	}
}

// WithEmbedder substitutes the embedding client.
func WithEmbedder(models Embedder) GeminiOption {
	return func(e *GeminiEncoder) error {
		if models == nil {
			return errors.New("embedder cannot be nil")
		}
		e.models = models
		return nil
	}
}

// WithLookuper sets where GEMINI_API_KEY is read from.
func WithLookuper(lookuper envconfig.Lookuper) GeminiOption {
	return func(e *GeminiEncoder) error {
		if lookuper == nil {
			return errors.New("lookuper cannot be nil")
		}
		e.lookuper = lookuper
		return nil
	}
}

// NewGeminiEncoder creates an encoder. Without WithEmbedder it reads
// GEMINI_API_KEY and builds a Gemini API client.
func NewGeminiEncoder(ctx context.Context, opts ...GeminiOption) (*GeminiEncoder, error) {
	e := &GeminiEncoder{model: DefaultEmbeddingModel}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if e.models != nil {
		return e, nil
	}

	var cfg geminiConfig
	if err := lm.LoadCredentials(ctx, e.lookuper, &cfg); err != nil {
		return nil, err
	}
	if err := lm.RequireKey(lm.GeminiAPIKeyEnv, cfg.APIKey); err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	e.models = client.Models
	clog.FromContext(ctx).With("model", e.model).Info("Created Gemini embedding encoder")
	return e, nil
}

// Encode implements Encoder. A text without tokens encodes to nothing.
func (e *GeminiEncoder) Encode(ctx context.Context, text string) ([][]float32, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	contents := make([]*genai.Content, 0, len(tokens))
	for _, tok := range tokens {
		contents = append(contents, genai.NewContentFromText(tok, genai.RoleUser))
	}

	resp, err := e.models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embedding %d tokens: %w", len(tokens), err)
	}
	if resp == nil || len(resp.Embeddings) != len(tokens) {
		return nil, fmt.Errorf("embedding %d tokens: got an unexpected number of embeddings", len(tokens))
	}
	out := make([][]float32, 0, len(tokens))
	for _, emb := range resp.Embeddings {
		if emb == nil {
			return nil, errors.New("embedding response contains a nil embedding")
		}
		out = append(out, emb.Values)
	}
	return out, nil
}
