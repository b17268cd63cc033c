/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package geminilm

import (
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/jawaher/agents/lm"
	"github.com/sethvargo/go-envconfig"
)

// Option is a functional option for configuring the adapter
type Option func(*LM) error

// WithModel sets the model to use for generation
func WithModel(model string) Option {
	return func(l *LM) error {
		if !strings.HasPrefix(model, "gemini-") {
			return fmt.Errorf("model %q does not appear to be a Gemini model (expected gemini-* format)", model)
		}
		l.defaults.Model = model
		return nil
	}
}

// WithTemperature sets the default temperature.
// Gemini models accept values from 0.0 to 2.0.
func WithTemperature(temperature float64) Option {
	return func(l *LM) error {
		if temperature < 0.0 || temperature > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temperature)
		}
		l.defaults.Temperature = temperature
		return nil
	}
}

// WithMaxTokens sets the default maximum output tokens
func WithMaxTokens(tokens int64) Option {
	return func(l *LM) error {
		if tokens <= 0 {
			return fmt.Errorf("max output tokens must be positive, got %d", tokens)
		}
		if tokens > maxOutputTokens {
			return fmt.Errorf("max output tokens %d exceeds maximum of %d", tokens, maxOutputTokens)
		}
		l.defaults.MaxTokens = tokens
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

// WithTopK sets the top-k sampling cutoff sent with every call
func WithTopK(topK int) Option {
	return func(l *LM) error {
		if topK <= 0 {
			return fmt.Errorf("top_k must be positive, got %d", topK)
		}
		k := float64(topK)
		l.defaults.TopK = &k
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

// WithClient substitutes the generate-content client
func WithClient(client ContentGenerator) Option {
	return func(l *LM) error {
		if client == nil {
			return errors.New("client cannot be nil")
		}
		l.models = client
		return nil
	}
}
