/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"fmt"
	"strings"
)

// MetricResult is the outcome of one metric over one task.
type MetricResult struct {
	// Name is the registered metric name.
	Name string `json:"name"`
	// Score is the primary value.
	Score float64 `json:"score"`
	// Max is the upper end of the metric's scale: 1 for rates, 5 for judge ratings.
	Max float64 `json:"max"`
	// N is the number of items that contributed to Score.
	N int `json:"n"`
	// Details carries metric-specific diagnostics, such as mismatches.
	Details any `json:"details,omitempty"`
}

// Normalized returns Score mapped onto [0,1].
func (m MetricResult) Normalized() float64 {
	if m.Max <= 0 {
		return m.Score
	}
	return m.Score / m.Max
}

// Sample is one scored instance, kept when sample logging is enabled.
type Sample struct {
	ID         string `json:"id"`
	Prompt     string `json:"prompt"`
	Target     string `json:"target"`
	Prediction string `json:"prediction"`
	// Scored is the text the metrics saw after filtering.
	Scored     string `json:"scored"`
}

// TaskResult is everything a run produced for one task.
type TaskResult struct {
	Task    string         `json:"task"`
	Model   string         `json:"model"`
	N       int            `json:"n"`
	Metrics []MetricResult `json:"metrics"`
	Samples []Sample       `json:"samples,omitempty"`
}

// Metric returns the named metric result.
func (r TaskResult) Metric(name string) (MetricResult, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return MetricResult{}, false
}

// String returns a one-line summary.
func (r TaskResult) String() string {
	parts := make([]string, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		parts = append(parts, fmt.Sprintf("%s=%.4f", m.Name, m.Score))
	}
	return fmt.Sprintf("%s (%s, n=%d): %s", r.Task, r.Model, r.N, strings.Join(parts, " "))
}
