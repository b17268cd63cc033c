/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"fmt"
	"strings"
)

// Phases of a sentiment item.
const (
	PhaseProverb     = "proverb"
	PhaseExplanation = "explanation"
)

// MaxMismatches bounds the mismatches reported by SentimentConsistency.
const MaxMismatches = 20

// SentimentKeyed is implemented by documents that take part in the
// sentiment consistency check.
type SentimentKeyed interface {
	SentimentKey() (id, phase string)
}

// Mismatch is an id whose two phases were labeled differently.
type Mismatch struct {
	ID               string `json:"id"`
	ProverbLabel     string `json:"proverb_label"`
	ExplanationLabel string `json:"explanation_label"`
}

// Consistency is the result of SentimentConsistency.
type Consistency struct {
	Score      float64    `json:"score"`
	N          int        `json:"n"`
	Mismatches []Mismatch `json:"mismatches"`
}

// SentimentLabel is the lowercased first whitespace token of a prediction.
func SentimentLabel(prediction string) string {
	fields := strings.Fields(prediction)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// SentimentConsistency checks that each proverb receives the same label as
// its explanation. Only ids with both phases count. Within a phase the last
// prediction for an id wins.
func SentimentConsistency(predictions []string, docs []SentimentKeyed) (Consistency, error) {
	if len(predictions) != len(docs) {
		return Consistency{}, fmt.Errorf("%w: %d predictions, %d documents", ErrLengthMismatch, len(predictions), len(docs))
	}

	type pair struct {
		proverb, explanation       string
		hasProverb, hasExplanation bool
	}
	var order []string
	groups := make(map[string]*pair)
	for i, doc := range docs {
		id, phase := doc.SentimentKey()
		g, ok := groups[id]
		if !ok {
			g = &pair{}
			groups[id] = g
			order = append(order, id)
		}
		label := SentimentLabel(predictions[i])
		switch phase {
		case PhaseProverb:
			g.proverb, g.hasProverb = label, true
		case PhaseExplanation:
			g.explanation, g.hasExplanation = label, true
		default:
			return Consistency{}, fmt.Errorf("document %d: unknown phase %q", i, phase)
		}
	}

	res := Consistency{Mismatches: []Mismatch{}}
	matches := 0
	for _, id := range order {
		g := groups[id]
		if !g.hasProverb || !g.hasExplanation {
			continue
		}
		res.N++
		if g.proverb == g.explanation {
			matches++
			continue
		}
		if len(res.Mismatches) < MaxMismatches {
			res.Mismatches = append(res.Mismatches, Mismatch{
				ID:               id,
				ProverbLabel:     g.proverb,
				ExplanationLabel: g.explanation,
			})
		}
	}
	if res.N > 0 {
		res.Score = float64(matches) / float64(res.N)
	}
	return res, nil
}
