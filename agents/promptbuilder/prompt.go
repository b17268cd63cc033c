/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// stringLiteral only accepts untyped string constants from callers.
type stringLiteral string

// Prompt is a tokenized template plus the values bound so far.
type Prompt struct {
	segments []segment
	bindings map[string]binding
}

// NewPrompt tokenizes a template literal.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	segs, err := tokenize(string(template))
	if err != nil {
		return nil, err
	}
	bindings := make(map[string]binding)
	for _, s := range segs {
		if s.placeholder != "" {
			bindings[s.placeholder] = nil
		}
	}
	return &Prompt{segments: segs, bindings: bindings}, nil
}

// Placeholders returns the sorted placeholder names of the template.
func (p *Prompt) Placeholders() []string {
	return slices.Sorted(maps.Keys(p.bindings))
}

// Unbound returns the sorted names that still need a value.
func (p *Prompt) Unbound() []string {
	var out []string
	for _, name := range p.Placeholders() {
		if p.bindings[name] == nil {
			out = append(out, name)
		}
	}
	return out
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	current, exists := p.bindings[name]
	switch {
	case !exists:
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	case current != nil:
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Prompt{segments: p.segments, bindings: maps.Clone(p.bindings)}
	next.bindings[name] = b
	return next, nil
}

// BindLiteral binds a developer-controlled constant.
func (p *Prompt) BindLiteral(name string, value stringLiteral) (*Prompt, error) {
	return p.bind(name, literal(string(value)))
}

// BindText binds a runtime string that is inserted verbatim.
func (p *Prompt) BindText(name, value string) (*Prompt, error) {
	return p.bind(name, literal(value))
}

// BindJSON binds data marshaled as indented JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, jsonValue(data))
}

// BindYAML binds data marshaled as YAML, without the trailing newline.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, yamlValue(data))
}

// BindAll binds every entry of values verbatim.
func (p *Prompt) BindAll(values map[string]string) (*Prompt, error) {
	next := p
	for _, name := range slices.Sorted(maps.Keys(values)) {
		var err error
		if next, err = next.BindText(name, values[name]); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// Build renders the prompt. Every placeholder must be bound.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for _, name := range p.Placeholders() {
		b := p.bindings[name]
		if b == nil {
			return "", fmt.Errorf("unbound placeholder: %s", name)
		}
		v, err := b()
		if err != nil {
			return "", fmt.Errorf("placeholder %q: %w", name, err)
		}
		values[name] = v
	}

	var sb strings.Builder
	for _, s := range p.segments {
		if s.placeholder == "" {
			sb.WriteString(s.text)
			continue
		}
		sb.WriteString(values[s.placeholder])
	}
	return sb.String(), nil
}
