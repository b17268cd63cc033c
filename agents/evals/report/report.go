/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"chainguard.dev/jawaher/agents/evals"
	"chainguard.dev/sdk/pathtree"
)

// Table renders results as a markdown table, sorted by task then model.
func Table(results []evals.TaskResult) (string, error) {
	sorted := sortedResults(results)

	var buf bytes.Buffer
	table := newScoreTable(&buf)
	for _, r := range sorted {
		for _, m := range r.Metrics {
			if err := table.Append([]string{
				r.Task,
				r.Model,
				m.Name,
				strconv.FormatFloat(m.Score, 'f', 4, 64),
				strconv.Itoa(m.N),
			}); err != nil {
				return "", fmt.Errorf("appending row: %w", err)
			}
		}
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	return buf.String(), nil
}

// Tree renders results as a model/task/metric tree. Metrics whose
// normalized score is below threshold are marked. Repeating a model and
// task pair is an error.
func Tree(results []evals.TaskResult, threshold float64) (string, error) {
	tree := pathtree.New()
	tree.PrintOption = pathtree.KeyValueLabel

	for _, r := range sortedResults(results) {
		taskPath := fmt.Sprintf("%s/%s", r.Model, r.Task)
		if err := tree.Add(taskPath, fmt.Sprintf("%d", r.N), "instances"); err != nil {
			return "", fmt.Errorf("adding %s: %w", taskPath, err)
		}

		for _, m := range r.Metrics {
			value := strconv.FormatFloat(m.Score, 'f', 4, 64)
			if m.Normalized() < threshold {
				value = "❌ " + value
			}
			label := fmt.Sprintf("(n=%d)", m.N)
			metricPath := fmt.Sprintf("%s/%s", taskPath, m.Name)
			if err := tree.Add(metricPath, value, label); err != nil {
				return "", fmt.Errorf("adding %s: %w", metricPath, err)
			}
		}
	}
	return tree.String(), nil
}

// Below returns the model/task/metric paths whose normalized score is under
// threshold, in report order.
func Below(results []evals.TaskResult, threshold float64) []string {
	var out []string
	for _, r := range sortedResults(results) {
		for _, m := range r.Metrics {
			if m.Normalized() < threshold {
				out = append(out, fmt.Sprintf("%s/%s/%s", r.Model, r.Task, m.Name))
			}
		}
	}
	return out
}

func sortedResults(results []evals.TaskResult) []evals.TaskResult {
	out := make([]evals.TaskResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Task != out[j].Task {
			return out[i].Task < out[j].Task
		}
		return out[i].Model < out[j].Model
	})
	return out
}
