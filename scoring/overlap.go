/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"context"

	"chainguard.dev/jawaher/scoring/bertscore"
	"chainguard.dev/jawaher/scoring/sacrebleu"
)

func normalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = normalizeOverlap(t)
	}
	return out
}

// ArabicBLEU is corpus BLEU over mark-stripped text, rescaled to [0,1].
func ArabicBLEU(predictions, references []string) (float64, error) {
	if err := checkParallel(predictions, references); err != nil {
		return 0, err
	}
	if len(predictions) == 0 {
		return 0, nil
	}
	b, err := sacrebleu.CorpusBLEU(normalizeAll(predictions), normalizeAll(references))
	if err != nil {
		return 0, err
	}
	return b.Score / 100, nil
}

// ArabicChrF is corpus chrF over mark-stripped text, rescaled to [0,1].
func ArabicChrF(predictions, references []string) (float64, error) {
	if err := checkParallel(predictions, references); err != nil {
		return 0, err
	}
	if len(predictions) == 0 {
		return 0, nil
	}
	c, err := sacrebleu.CorpusChrF(normalizeAll(predictions), normalizeAll(references))
	if err != nil {
		return 0, err
	}
	return c.Score / 100, nil
}

// bertScore returns the first pair's result, which is what the benchmark
// reports for a scoring call. Only that pair is embedded; the rest of the
// batch is checked for length and otherwise ignored.
func bertScore(ctx context.Context, enc bertscore.Encoder, predictions, references []string) (bertscore.Result, error) {
	if err := checkParallel(predictions, references); err != nil {
		return bertscore.Result{}, err
	}
	if len(predictions) == 0 {
		return bertscore.Result{}, nil
	}
	results, err := bertscore.Score(ctx, enc, predictions[:1], references[:1])
	if err != nil {
		return bertscore.Result{}, err
	}
	return results[0], nil
}

// BERTScoreF1 returns the F1 of the first pair.
func BERTScoreF1(ctx context.Context, enc bertscore.Encoder, predictions, references []string) (float64, error) {
	r, err := bertScore(ctx, enc, predictions, references)
	return r.F1, err
}

// BERTScorePrecision returns the precision of the first pair.
func BERTScorePrecision(ctx context.Context, enc bertscore.Encoder, predictions, references []string) (float64, error) {
	r, err := bertScore(ctx, enc, predictions, references)
	return r.Precision, err
}

// BERTScoreRecall returns the recall of the first pair.
func BERTScoreRecall(ctx context.Context, enc bertscore.Encoder, predictions, references []string) (float64, error) {
	r, err := bertScore(ctx, enc, predictions, references)
	return r.Recall, err
}
