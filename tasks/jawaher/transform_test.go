/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package jawaher

import (
	"fmt"
	"testing"

	"chainguard.dev/jawaher/tasks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func proverbs(n int) tasks.Dataset[ProverbRecord] {
	records := make([]ProverbRecord, n)
	for i := range records {
		records[i] = ProverbRecord{
			ID:                   fmt.Sprint(i),
			Proverb:              fmt.Sprintf("مثل %d", i),
			Explanation:          fmt.Sprintf("correct %d", i),
			EnglishExplanation:   fmt.Sprintf("english %d", i),
			IncorrectExplanation: fmt.Sprintf("wrong %d", i),
			Sentiment:            "Positive",
		}
	}
	return tasks.FromSlice(records)
}

func TestShuffleExplanationsIsDeterministic(t *testing.T) {
	ds := proverbs(64)
	first := ShuffleExplanations(NewRand(0), ds).Records()
	second := ShuffleExplanations(NewRand(0), ds).Records()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("shuffle differs between runs (-first +second):\n%s", diff)
	}

	// A different seed should move at least one answer.
	other := ShuffleExplanations(NewRand(42), ds).Records()
	require.NotEqual(t, first, other)
}

func TestShuffleExplanationsSeedZeroPlacement(t *testing.T) {
	records := make([]ProverbRecord, 8)
	for i := range records {
		records[i] = ProverbRecord{ID: fmt.Sprint(i), Explanation: "C", IncorrectExplanation: "I"}
	}
	var answers []int
	for _, c := range ShuffleExplanations(NewRand(0), tasks.FromSlice(records)).Records() {
		answers = append(answers, c.Answer)
	}
	require.Equal(t, []int{0, 0, 1, 0, 0, 0, 0, 0}, answers)
}

func TestShuffleExplanationsKeepsAnswerConsistent(t *testing.T) {
	counts := [2]int{}
	for _, c := range ShuffleExplanations(NewRand(7), proverbs(200)).Records() {
		require.Equal(t, "correct "+c.ID, c.Options[c.Answer])
		require.Equal(t, "wrong "+c.ID, c.Options[1-c.Answer])
		require.Equal(t, "مثل "+c.ID, c.Proverb)
		counts[c.Answer]++
	}
	// Both placements occur.
	require.NotZero(t, counts[0])
	require.NotZero(t, counts[1])
}

func TestShuffleExplanationsPlaceholder(t *testing.T) {
	ds := tasks.FromSlice([]ProverbRecord{{ID: "1", Proverb: "p", Explanation: "  ", IncorrectExplanation: "wrong"}})
	c := ShuffleExplanations(NewRand(0), ds).At(0)
	require.Equal(t, MissingExplanation, c.Options[c.Answer])
	require.Equal(t, "wrong", c.Options[1-c.Answer])
}

func TestShuffleExplanationsIdenticalOptions(t *testing.T) {
	ds := tasks.FromSlice([]ProverbRecord{{ID: "1", Explanation: "same", IncorrectExplanation: "same"}})
	require.Equal(t, 0, ShuffleExplanations(NewRand(3), ds).At(0).Answer)
}

func TestFixedOrder(t *testing.T) {
	ds := proverbs(2)

	a := FixedOrder(ds, 0).At(1)
	require.Equal(t, ProverbChoice{ID: "1", Proverb: "مثل 1", Options: [2]string{"correct 1", "wrong 1"}, Answer: 0}, a)

	b := FixedOrder(ds, 1).At(1)
	require.Equal(t, ProverbChoice{ID: "1", Proverb: "مثل 1", Options: [2]string{"wrong 1", "correct 1"}, Answer: 1}, b)
}

func TestEnglishDistractors(t *testing.T) {
	got := EnglishDistractors(proverbs(3)).Records()
	require.Equal(t, "english 0", got[0].Explanation)
	require.Equal(t, "english 1", got[0].IncorrectExplanation)
	require.Equal(t, "english 0", got[2].IncorrectExplanation)

	single := EnglishDistractors(proverbs(1)).At(0)
	require.Empty(t, single.IncorrectExplanation)
}

func TestSplitCompletion(t *testing.T) {
	tests := []struct {
		proverb    string
		incomplete string
		target     string
	}{
		{"a b c", "a b", "c"},
		{"a", "", ""},
		{"", "", ""},
		{"  الصبر   مفتاح  الفرج ", "الصبر مفتاح", "الفرج"},
	}
	for _, tt := range tests {
		t.Run(tt.proverb, func(t *testing.T) {
			got := SplitCompletion(tasks.FromSlice([]ProverbRecord{{ID: "x", Proverb: tt.proverb}})).At(0)
			require.Equal(t, tt.incomplete, got.Incomplete)
			require.Equal(t, tt.target, got.Target)
			require.Equal(t, tt.proverb, got.Proverb)
		})
	}
}

func TestUppercaseAnswerKey(t *testing.T) {
	in := tasks.FromSlice([]IdiomRecord{{ID: "1", Proverb: "p", AnswerKey: "c"}, {ID: "2", AnswerKey: "A"}})
	got := UppercaseAnswerKey(in).Records()
	require.Equal(t, []IdiomRecord{{ID: "1", Proverb: "p", AnswerKey: "C"}, {ID: "2", AnswerKey: "A"}}, got)
	// The input is untouched.
	require.Equal(t, "c", in.At(0).AnswerKey)
}

func TestExpandSentimentPhases(t *testing.T) {
	got := ExpandSentimentPhases(proverbs(2)).Records()
	want := []SentimentItem{
		{ID: "0", Phase: "proverb", Text: "مثل 0", Label: "positive"},
		{ID: "0", Phase: "explanation", Text: "correct 0", Label: "positive"},
		{ID: "1", Phase: "proverb", Text: "مثل 1", Label: "positive"},
		{ID: "1", Phase: "explanation", Text: "correct 1", Label: "positive"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExpandSentimentPhases() mismatch (-want +got):\n%s", diff)
	}
	id, phase := got[1].SentimentKey()
	require.Equal(t, "0", id)
	require.Equal(t, "explanation", phase)
}
