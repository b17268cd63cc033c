/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lm

import (
	"sync"
)

// GenerateUntilKind is the request type recorded for generation results.
const GenerateUntilKind = "generate_until"

// CacheKey identifies a completion: the prompt and the parameters it was
// generated with.
type CacheKey struct {
	Prompt  string   `json:"prompt"`
	Options Resolved `json:"options"`
}

// CacheHook receives every generated completion. Implementations must not
// fail the caller: the hook is a fire-and-forget sink.
type CacheHook interface {
	AddPartial(kind string, key CacheKey, output string)
}

// CacheHookFunc adapts a function to CacheHook.
type CacheHookFunc func(kind string, key CacheKey, output string)

// AddPartial implements CacheHook.
func (f CacheHookFunc) AddPartial(kind string, key CacheKey, output string) {
	f(kind, key, output)
}

// NopCacheHook discards everything.
type NopCacheHook struct{}

// AddPartial implements CacheHook.
func (NopCacheHook) AddPartial(string, CacheKey, string) {}

// CacheEntry is one recorded completion.
type CacheEntry struct {
	Kind   string   `json:"kind"`
	Key    CacheKey `json:"key"`
	Output string   `json:"output"`
}

// MemoryCache records entries in memory, in arrival order.
type MemoryCache struct {
	mu      sync.Mutex
	entries []CacheEntry
}

// AddPartial implements CacheHook.
func (m *MemoryCache) AddPartial(kind string, key CacheKey, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, CacheEntry{Kind: kind, Key: key, Output: output})
}

// Entries returns a copy of the recorded entries.
func (m *MemoryCache) Entries() []CacheEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CacheEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Lookup returns the first recorded output for key.
func (m *MemoryCache) Lookup(kind string, key CacheKey) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Kind == kind && sameKey(e.Key, key) {
			return e.Output, true
		}
	}
	return "", false
}

func sameKey(a, b CacheKey) bool {
	if a.Prompt != b.Prompt || a.Options.Model != b.Options.Model ||
		a.Options.MaxTokens != b.Options.MaxTokens ||
		a.Options.Temperature != b.Options.Temperature ||
		a.Options.TopP != b.Options.TopP {
		return false
	}
	if (a.Options.TopK == nil) != (b.Options.TopK == nil) {
		return false
	}
	if a.Options.TopK != nil && *a.Options.TopK != *b.Options.TopK {
		return false
	}
	if len(a.Options.StopSequences) != len(b.Options.StopSequences) {
		return false
	}
	for i := range a.Options.StopSequences {
		if a.Options.StopSequences[i] != b.Options.StopSequences[i] {
			return false
		}
	}
	return true
}
