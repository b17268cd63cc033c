/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudelm

import (
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/jawaher/agents/lm"
	"github.com/sethvargo/go-envconfig"
)

// Option is a functional option for configuring the adapter
type Option func(*LM) error

// WithModel overrides the model name
func WithModel(model string) Option {
	return func(l *LM) error {
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", model)
		}
		l.defaults.Model = model
		return nil
	}
}

// WithMaxTokens sets the default maximum tokens per completion
func WithMaxTokens(tokens int64) Option {
	return func(l *LM) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		l.defaults.MaxTokens = tokens
		return nil
	}
}

// WithTemperature sets the default temperature.
// Claude models accept values from 0.0 to 1.0.
func WithTemperature(temp float64) Option {
	return func(l *LM) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
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

// WithBaseURL points the client at a different Messages API host
func WithBaseURL(url string) Option {
	return func(l *LM) error {
		if url == "" {
			return errors.New("base URL cannot be empty")
		}
		l.baseURL = url
		return nil
	}
}

// WithClient substitutes the Messages API client
func WithClient(client MessageCreator) Option {
	return func(l *LM) error {
		if client == nil {
			return errors.New("client cannot be nil")
		}
		l.messages = client
		return nil
	}
}
