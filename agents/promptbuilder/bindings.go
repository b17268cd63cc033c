/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// binding renders the value of one placeholder. A nil binding is unbound.
type binding func() (string, error)

func literal(s string) binding {
	return func() (string, error) { return s, nil }
}

func jsonValue(data any) binding {
	return func() (string, error) {
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(b), nil
	}
}

func yamlValue(data any) binding {
	return func() (string, error) {
		b, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return strings.TrimSuffix(string(b), "\n"), nil
	}
}

// Binder is implemented by documents that fill a template with their own fields.
type Binder interface {
	Bind(prompt *Prompt) (*Prompt, error)
}
