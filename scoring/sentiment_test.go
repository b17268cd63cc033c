/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type keyed struct {
	id, phase string
}

func (k keyed) SentimentKey() (string, string) { return k.id, k.phase }

func TestSentimentLabel(t *testing.T) {
	tests := map[string]string{
		"Positive":                "positive",
		"  NEGATIVE because ...": "negative",
		"neutral.":                "neutral.",
		"":                        "",
	}
	for in, want := range tests {
		if got := SentimentLabel(in); got != want {
			t.Errorf("SentimentLabel(%q) = %q, wanted %q", in, got, want)
		}
	}
}

func TestSentimentConsistency(t *testing.T) {
	preds := []string{"Positive", "positive and kind", "Negative", "Neutral", "Positive"}
	docs := []SentimentKeyed{
		keyed{"1", PhaseProverb},
		keyed{"1", PhaseExplanation},
		keyed{"2", PhaseProverb},
		keyed{"2", PhaseExplanation},
		// Only the proverb phase: excluded from both counts.
		keyed{"3", PhaseProverb},
	}

	got, err := SentimentConsistency(preds, docs)
	if err != nil {
		t.Fatalf("SentimentConsistency() error = %v", err)
	}
	want := Consistency{
		Score:      0.5,
		N:          2,
		Mismatches: []Mismatch{{ID: "2", ProverbLabel: "negative", ExplanationLabel: "neutral"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SentimentConsistency() mismatch (-want +got):\n%s", diff)
	}
}

func TestSentimentConsistencyProverbOnly(t *testing.T) {
	got, err := SentimentConsistency([]string{"positive"}, []SentimentKeyed{keyed{"1", PhaseProverb}})
	if err != nil {
		t.Fatalf("SentimentConsistency() error = %v", err)
	}
	if got.N != 0 || got.Score != 0 {
		t.Errorf("SentimentConsistency() = %+v, wanted zero score over zero ids", got)
	}
}

func TestSentimentConsistencyCapsMismatches(t *testing.T) {
	var preds []string
	var docs []SentimentKeyed
	for i := range 30 {
		id := fmt.Sprint(i)
		preds = append(preds, "positive", "negative")
		docs = append(docs, keyed{id, PhaseProverb}, keyed{id, PhaseExplanation})
	}
	got, err := SentimentConsistency(preds, docs)
	if err != nil {
		t.Fatalf("SentimentConsistency() error = %v", err)
	}
	if got.N != 30 || got.Score != 0 {
		t.Errorf("N, Score = %d, %v, wanted 30, 0", got.N, got.Score)
	}
	if len(got.Mismatches) != MaxMismatches {
		t.Errorf("len(Mismatches) = %d, wanted %d", len(got.Mismatches), MaxMismatches)
	}
	if got.Mismatches[0].ID != "0" || got.Mismatches[19].ID != "19" {
		t.Errorf("mismatches are not in document order: %+v", got.Mismatches)
	}
}

func TestSentimentConsistencyErrors(t *testing.T) {
	if _, err := SentimentConsistency([]string{"a"}, nil); err == nil {
		t.Error("length mismatch: got nil error")
	}
	if _, err := SentimentConsistency([]string{"a"}, []SentimentKeyed{keyed{"1", "context"}}); err == nil {
		t.Error("unknown phase: got nil error")
	}
}
