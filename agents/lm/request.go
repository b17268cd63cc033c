/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxStopSequences is the most stop sequences a hosted API accepts per call.
const MaxStopSequences = 4

// Request is a single generation request: a prompt plus its generation options.
type Request struct {
	Prompt  string  `json:"prompt"`
	Options Options `json:"options"`
}

// Options are the per-request generation settings recognized by the adapters.
// Nil fields fall back to the adapter defaults.
type Options struct {
	Until       StopSequences `json:"until,omitempty" yaml:"until,omitempty" jsonschema:"oneof_type=string;array"`
	MaxGenToks  *int64        `json:"max_gen_toks,omitempty" yaml:"max_gen_toks,omitempty"`
	Temperature *float64      `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TopP        *float64      `json:"top_p,omitempty" yaml:"top_p,omitempty"`
}

// StopSequences holds the `until` option. Task files may spell it as a single
// string or as a list of strings.
type StopSequences []string

// UnmarshalJSON accepts a string, a list of strings or null.
func (s *StopSequences) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*s = StopSequences{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("until must be a string or a list of strings: %w", err)
	}
	*s = many
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (s *StopSequences) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*s = nil
			return nil
		}
		*s = StopSequences{value.Value}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = many
		return nil
	default:
		return fmt.Errorf("line %d: until must be a string or a list of strings", value.Line)
	}
}

// NormalizeStopSequences drops empty and whitespace-only entries, keeps the
// original order and truncates the result to MaxStopSequences.
func NormalizeStopSequences(until []string) []string {
	out := make([]string, 0, min(len(until), MaxStopSequences))
	for _, s := range until {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
		if len(out) == MaxStopSequences {
			break
		}
	}
	return out
}

// Defaults are the generation settings an adapter was constructed with.
type Defaults struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	TopP        float64
	// TopK is only forwarded by backends that support it.
	TopK *float64
}

// Resolved holds the effective parameters of one vendor call.
type Resolved struct {
	Model         string   `json:"model"`
	MaxTokens     int64    `json:"max_tokens"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"top_p"`
	TopK          *float64 `json:"top_k,omitempty"`
	StopSequences []string `json:"stop_sequences"`
}

// Resolve merges request-level overrides on top of the defaults.
func (d Defaults) Resolve(opts Options) Resolved {
	r := Resolved{
		Model:         d.Model,
		MaxTokens:     d.MaxTokens,
		Temperature:   d.Temperature,
		TopP:          d.TopP,
		TopK:          d.TopK,
		StopSequences: NormalizeStopSequences(opts.Until),
	}
	if opts.MaxGenToks != nil {
		r.MaxTokens = *opts.MaxGenToks
	}
	if opts.Temperature != nil {
		r.Temperature = *opts.Temperature
	}
	if opts.TopP != nil {
		r.TopP = *opts.TopP
	}
	return r
}

// Ptr returns a pointer to v. It keeps option literals in tests and task
// definitions short.
func Ptr[T any](v T) *T {
	return &v
}
