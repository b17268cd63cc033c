/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"chainguard.dev/jawaher/agents/judge"
	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/scoring/bertscore"
	"chainguard.dev/jawaher/scoring/sacrebleu"
	"github.com/stretchr/testify/require"
)

func TestArabicOverlapScores(t *testing.T) {
	preds := []string{"الصَّبر مفتاح الفرج والفرح"}
	refs := []string{"الصبر مفتاح الفرج والفرح"}

	bleu, err := ArabicBLEU(preds, refs)
	require.NoError(t, err)
	require.InDelta(t, 1.0, bleu, 1e-9)

	chrf, err := ArabicChrF(preds, refs)
	require.NoError(t, err)
	require.InDelta(t, 1.0, chrf, 1e-9)

	bleu, err = ArabicBLEU(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, bleu)

	_, err = ArabicChrF([]string{"a"}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestArabicOverlapScoresPartialMatch(t *testing.T) {
	// Four of six words shared in order: n-gram precisions 4/6, 3/5, 2/4
	// and 1/3 with no brevity penalty.
	preds := []string{"الصَّبر مفتاح الفرج عند الشدة دائما"}
	refs := []string{"الصبر مفتاح الفرج عند الناس جميعا"}
	plain := []string{"الصبر مفتاح الفرج عند الشدة دائما"}

	bleu, err := ArabicBLEU(preds, refs)
	require.NoError(t, err)
	require.InDelta(t, math.Pow(4.0/6*3.0/5*2.0/4*1.0/3, 0.25), bleu, 1e-9)

	want, err := sacrebleu.CorpusBLEU(plain, refs)
	require.NoError(t, err)
	require.InDelta(t, want.Score/100, bleu, 1e-12)

	chrf, err := ArabicChrF(preds, refs)
	require.NoError(t, err)
	wantChrF, err := sacrebleu.CorpusChrF(plain, refs)
	require.NoError(t, err)
	require.InDelta(t, wantChrF.Score/100, chrf, 1e-12)
	require.Greater(t, chrf, 0.0)
	require.Less(t, chrf, 1.0)
}

type constJudge []int

func (c *constJudge) Rate(context.Context, string, string) (int, error) {
	r := (*c)[0]
	*c = (*c)[1:]
	return r, nil
}

func TestJudgeScore(t *testing.T) {
	j := &constJudge{5, 2, 4}
	got, err := JudgeScore(context.Background(), j, []string{"a", "b", "c"}, []string{"x", "y", "z"})
	require.NoError(t, err)
	require.InDelta(t, 11.0/3.0, got, 1e-12)

	got, err = JudgeScore(context.Background(), &constJudge{}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestJudgeScoreAbortsOnUnparsableReply(t *testing.T) {
	calls := 0
	j, err := judge.New(lm.GeneratorFunc(func(context.Context, lm.Request) (string, error) {
		calls++
		if calls == 2 {
			return "excellent", nil
		}
		return "3", nil
	}))
	require.NoError(t, err)

	_, err = JudgeScore(context.Background(), j, []string{"a", "b", "c"}, []string{"x", "y", "z"})
	require.ErrorIs(t, err, judge.ErrNoRating)
	require.Equal(t, 2, calls)
}

// wordVectors embeds each word as a one-hot over its first letter.
type wordVectors struct{}

func (wordVectors) Encode(_ context.Context, text string) ([][]float32, error) {
	var out [][]float32
	for _, w := range strings.Fields(text) {
		v := make([]float32, 26)
		v[(w[0]-'a')%26] = 1
		out = append(out, v)
	}
	return out, nil
}

func TestBERTScoreFirstPair(t *testing.T) {
	preds := []string{"apple", "zebra"}
	refs := []string{"apple banana", "apple"}

	f1, err := BERTScoreF1(context.Background(), wordVectors{}, preds, refs)
	require.NoError(t, err)
	require.InDelta(t, 2.0/3.0, f1, 1e-9)

	p, err := BERTScorePrecision(context.Background(), wordVectors{}, preds, refs)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-9)

	r, err := BERTScoreRecall(context.Background(), wordVectors{}, preds, refs)
	require.NoError(t, err)
	require.InDelta(t, 0.5, r, 1e-9)

	f1, err = BERTScoreF1(context.Background(), wordVectors{}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, f1)
}

// countingEncoder records every text it embeds.
type countingEncoder struct {
	wordVectors
	texts []string
}

func (c *countingEncoder) Encode(ctx context.Context, text string) ([][]float32, error) {
	c.texts = append(c.texts, text)
	return c.wordVectors.Encode(ctx, text)
}

func TestBERTScoreEmbedsOnlyFirstPair(t *testing.T) {
	enc := &countingEncoder{}
	preds := []string{"apple", "zebra", "mango", "kiwi"}
	refs := []string{"apple banana", "apple", "melon", "kale"}

	_, err := BERTScoreF1(context.Background(), enc, preds, refs)
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "apple banana"}, enc.texts)

	_, err = BERTScoreRecall(context.Background(), enc, preds, refs[:3])
	require.ErrorIs(t, err, ErrLengthMismatch)
	require.Len(t, enc.texts, 2)
}

func TestStandardRegistry(t *testing.T) {
	ctx := context.Background()
	r := NewStandardRegistry(Dependencies{})
	require.Equal(t, []string{
		MetricAccuracy,
		MetricArabicBLEU,
		MetricArabicChrF,
		MetricArabicExactMatch,
		MetricEnglishExactMatch,
		MetricSentimentConsistency,
	}, r.Names())

	m, err := r.Get(ctx, MetricArabicExactMatch)
	require.NoError(t, err)
	got, err := m.Compute(ctx, []Sample{{Prediction: "أهلاً", Reference: "اهلا"}, {Prediction: "x", Reference: "y"}})
	require.NoError(t, err)
	require.Equal(t, MetricArabicExactMatch, got.Name)
	require.Equal(t, 0.5, got.Score)
	require.Equal(t, 2, got.N)

	_, err = r.Get(ctx, MetricJudgeClaude)
	require.Error(t, err)
}

func TestStandardRegistryLazyDependencies(t *testing.T) {
	ctx := context.Background()
	built := 0
	r := NewStandardRegistry(Dependencies{
		ClaudeJudge: func(context.Context) (judge.Interface, error) {
			built++
			return &constJudge{4, 5}, nil
		},
		Encoder: func(context.Context) (bertscore.Encoder, error) {
			return nil, errors.New("no encoder")
		},
	})
	require.Zero(t, built)

	m, err := r.Get(ctx, MetricJudgeClaude)
	require.NoError(t, err)
	_, err = r.Get(ctx, MetricJudgeClaude)
	require.NoError(t, err)
	require.Equal(t, 1, built)

	got, err := m.Compute(ctx, []Sample{{Prediction: "a", Reference: "b"}, {Prediction: "c", Reference: "d"}})
	require.NoError(t, err)
	require.Equal(t, 4.5, got.Score)
	require.Equal(t, 5.0, got.Max)

	_, err = r.Get(ctx, MetricBERTScoreF1)
	require.ErrorContains(t, err, "no encoder")
}

func TestSentimentMetric(t *testing.T) {
	r := NewStandardRegistry(Dependencies{})
	m, err := r.Get(context.Background(), MetricSentimentConsistency)
	require.NoError(t, err)

	got, err := m.Compute(context.Background(), []Sample{
		{Prediction: "Positive", Doc: keyed{"1", PhaseProverb}},
		{Prediction: "Positive", Doc: keyed{"1", PhaseExplanation}},
	})
	require.NoError(t, err)
	require.Equal(t, 1.0, got.Score)
	require.Equal(t, 1, got.N)

	_, err = m.Compute(context.Background(), []Sample{{Prediction: "x", Doc: "plain"}})
	require.Error(t, err)
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("m", static(sentimentMetric{})))
	require.Error(t, r.Register("m", static(sentimentMetric{})))
}
