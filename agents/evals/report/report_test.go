/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report_test

import (
	"strings"
	"testing"

	"chainguard.dev/jawaher/agents/evals"
	"chainguard.dev/jawaher/agents/evals/report"
	"github.com/google/go-cmp/cmp"
)

var results = []evals.TaskResult{{
	Task:  "maps_mcq",
	Model: "gemini-1.5-flash",
	N:     4,
	Metrics: []evals.MetricResult{
		{Name: "acc", Score: 0.25, Max: 1, N: 4},
	},
}, {
	Task:  "jawaher_explain_en",
	Model: "gemini-1.5-flash",
	N:     2,
	Metrics: []evals.MetricResult{
		{Name: "bleu", Score: 0.5, Max: 1, N: 2},
		{Name: "llm_judge_openai", Score: 4.5, Max: 5, N: 2},
	},
}}

func TestTable(t *testing.T) {
	got, err := report.Table(results)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	t.Logf("Generated table:\n%s", got)

	for _, want := range []string{"Task", "jawaher_explain_en", "llm_judge_openai", "4.5000", "0.2500"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q", want)
		}
	}
	if strings.Index(got, "jawaher_explain_en") > strings.Index(got, "maps_mcq") {
		t.Error("rows are not sorted by task")
	}
}

func TestTree(t *testing.T) {
	got, err := report.Tree(results, 0.5)
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	t.Logf("Generated tree:\n%s", got)

	if !strings.Contains(got, "❌ 0.2500") {
		t.Error("tree should flag the maps_mcq accuracy")
	}
	if strings.Contains(got, "❌ 4.5000") {
		t.Error("tree should compare judge ratings on the normalized scale")
	}
}

func TestTreeRepeatedTask(t *testing.T) {
	if _, err := report.Tree(append(results, results[0]), 0); err == nil {
		t.Error("Tree() = nil error, wanted a duplicate key error")
	}
}

func TestBelow(t *testing.T) {
	if diff := cmp.Diff([]string{"gemini-1.5-flash/maps_mcq/acc"}, report.Below(results, 0.5)); diff != "" {
		t.Errorf("Below(0.5) mismatch (-want +got):\n%s", diff)
	}
	if got := report.Below(results, 0.2); got != nil {
		t.Errorf("Below(0.2) = %v, wanted none", got)
	}
	if got := report.Below(results, 0.95); len(got) != 3 {
		t.Errorf("Below(0.95) = %v, wanted all three metrics", got)
	}
}
