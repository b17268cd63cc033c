/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tasks

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"chainguard.dev/jawaher/agents/lm"
)

// Instance is one prompt to send to the model.
type Instance struct {
	ID     string
	Prompt string
	Target string
	// Doc is the document the instance was built from. Document-aware
	// metrics read it.
	Doc any
}

// Request pairs the prompt with the task's generation options.
func (i Instance) Request(opts lm.Options) lm.Request {
	return lm.Request{Prompt: i.Prompt, Options: opts}
}

// Spec is a benchmark task.
type Spec interface {
	// Name is the registered task name.
	Name() string
	// Description is a one-line summary for listings.
	Description() string
	// Defaults are merged under user-supplied configs.
	Defaults() Config
	// Build loads the dataset named by cfg and renders its instances.
	Build(ctx context.Context, cfg Config) ([]Instance, error)
}

// Registry holds the known tasks.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register adds specs. Names must be unique.
func (r *Registry) Register(specs ...Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if _, exists := r.specs[s.Name()]; exists {
			return fmt.Errorf("task %q already registered", s.Name())
		}
		r.specs[s.Name()] = s
	}
	return nil
}

// Lookup returns the named task.
func (r *Registry) Lookup(name string) (Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("unknown task %q", name)
	}
	return s, nil
}

// Names returns the sorted task names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.specs))
}
