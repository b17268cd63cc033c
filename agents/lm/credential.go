/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lm

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Credential environment variables read by the adapters.
const (
	AnthropicAPIKeyEnv = "ANTHROPIC_API_KEY"
	GeminiAPIKeyEnv    = "GEMINI_API_KEY"
	OpenAIAPIKeyEnv    = "OPENAI_API_KEY"
)

// LoadCredentials populates target, a pointer to a struct carrying `env`
// tags, through lookuper. A nil lookuper reads the process environment.
// Adapters call it once while they are constructed and keep the result; any
// failure wraps ErrMissingCredential.
func LoadCredentials(ctx context.Context, lookuper envconfig.Lookuper, target any) error {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   target,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingCredential, err)
	}
	return nil
}

// RequireKey fails with ErrMissingCredential when value is empty.
func RequireKey(envVar, value string) error {
	if value == "" {
		return fmt.Errorf("%w: set %s in your environment", ErrMissingCredential, envVar)
	}
	return nil
}
