/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package jawaher

import (
	"slices"
	"strings"

	"chainguard.dev/jawaher/scoring"
	"chainguard.dev/jawaher/tasks"
	"chainguard.dev/jawaher/tasks/mt19937"
)

// MissingExplanation stands in for a blank explanation so no option is empty.
const MissingExplanation = "No explanation available"

// NewRand returns the deterministic source used for option shuffling. Seed 0
// gives the option orders of the published benchmark results.
func NewRand(seed uint64) *mt19937.Source {
	return mt19937.New(seed)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return MissingExplanation
	}
	return s
}

// ShuffleExplanations places the correct and incorrect explanations in a
// random order. Records are visited in dataset order, so the placement of
// each answer depends on the seed and on every record before it.
func ShuffleExplanations(rng *mt19937.Source, ds tasks.Dataset[ProverbRecord]) tasks.Dataset[ProverbChoice] {
	return tasks.Map(ds, func(r ProverbRecord) ProverbChoice {
		correct := orPlaceholder(r.Explanation)
		options := []string{correct, orPlaceholder(r.IncorrectExplanation)}
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		return ProverbChoice{
			ID:      r.ID,
			Proverb: r.Proverb,
			Options: [2]string(options),
			// The first equal option wins when both explanations match.
			Answer: slices.Index(options, correct),
		}
	})
}

// FixedOrder places the correct explanation at correctIndex (0 or 1).
func FixedOrder(ds tasks.Dataset[ProverbRecord], correctIndex int) tasks.Dataset[ProverbChoice] {
	return tasks.Map(ds, func(r ProverbRecord) ProverbChoice {
		c := ProverbChoice{ID: r.ID, Proverb: r.Proverb, Answer: correctIndex}
		c.Options[correctIndex] = orPlaceholder(r.Explanation)
		c.Options[1-correctIndex] = orPlaceholder(r.IncorrectExplanation)
		return c
	})
}

// EnglishDistractors swaps in English explanations. The incorrect option for
// each proverb is the English explanation of the next record, wrapping
// around at the end.
func EnglishDistractors(ds tasks.Dataset[ProverbRecord]) tasks.Dataset[ProverbRecord] {
	records := ds.Records()
	out := make([]ProverbRecord, len(records))
	for i, r := range records {
		r.Explanation = r.EnglishExplanation
		r.IncorrectExplanation = ""
		if len(records) > 1 {
			r.IncorrectExplanation = records[(i+1)%len(records)].EnglishExplanation
		}
		out[i] = r
	}
	return tasks.FromSlice(out)
}

// SplitCompletion hides the final word of each proverb. Proverbs with
// fewer than two words yield an empty prefix and target.
func SplitCompletion(ds tasks.Dataset[ProverbRecord]) tasks.Dataset[CompletionItem] {
	return tasks.Map(ds, func(r ProverbRecord) CompletionItem {
		item := CompletionItem{ID: r.ID, Proverb: r.Proverb}
		words := strings.Fields(r.Proverb)
		if len(words) < 2 {
			return item
		}
		item.Incomplete = strings.Join(words[:len(words)-1], " ")
		item.Target = words[len(words)-1]
		return item
	})
}

// UppercaseAnswerKey upper-cases the answer key and leaves everything else.
func UppercaseAnswerKey(ds tasks.Dataset[IdiomRecord]) tasks.Dataset[IdiomRecord] {
	return tasks.Map(ds, func(r IdiomRecord) IdiomRecord {
		r.AnswerKey = strings.ToUpper(r.AnswerKey)
		return r
	})
}

// ExpandSentimentPhases emits a proverb item followed by an explanation item
// for every record.
func ExpandSentimentPhases(ds tasks.Dataset[ProverbRecord]) tasks.Dataset[SentimentItem] {
	return tasks.FlatMap(ds, func(r ProverbRecord) []SentimentItem {
		label := strings.ToLower(strings.TrimSpace(r.Sentiment))
		return []SentimentItem{
			{ID: r.ID, Phase: scoring.PhaseProverb, Text: r.Proverb, Label: label},
			{ID: r.ID, Phase: scoring.PhaseExplanation, Text: orPlaceholder(r.Explanation), Label: label},
		}
	})
}
