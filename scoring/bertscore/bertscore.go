/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package bertscore

import (
	"context"
	"fmt"
	"math"
)

// Encoder maps a text onto one embedding per token.
type Encoder interface {
	Encode(ctx context.Context, text string) ([][]float32, error)
}

// Result is the BERTScore of one candidate/reference pair.
type Result struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Score computes one Result per pair, in order.
func Score(ctx context.Context, enc Encoder, candidates, references []string) ([]Result, error) {
	if len(candidates) != len(references) {
		return nil, fmt.Errorf("bertscore: %d candidates, %d references", len(candidates), len(references))
	}
	results := make([]Result, 0, len(candidates))
	for i := range candidates {
		cand, err := enc.Encode(ctx, candidates[i])
		if err != nil {
			return nil, fmt.Errorf("encoding candidate %d: %w", i, err)
		}
		ref, err := enc.Encode(ctx, references[i])
		if err != nil {
			return nil, fmt.Errorf("encoding reference %d: %w", i, err)
		}
		results = append(results, Match(cand, ref))
	}
	return results, nil
}

// Match greedily aligns candidate and reference token embeddings. An empty
// side scores zero.
func Match(cand, ref [][]float32) Result {
	if len(cand) == 0 || len(ref) == 0 {
		return Result{}
	}
	sim := make([][]float64, len(cand))
	for i := range cand {
		sim[i] = make([]float64, len(ref))
		for j := range ref {
			sim[i][j] = cosine(cand[i], ref[j])
		}
	}

	var p, r float64
	for i := range cand {
		best := math.Inf(-1)
		for j := range ref {
			best = max(best, sim[i][j])
		}
		p += best
	}
	for j := range ref {
		best := math.Inf(-1)
		for i := range cand {
			best = max(best, sim[i][j])
		}
		r += best
	}
	res := Result{
		Precision: p / float64(len(cand)),
		Recall:    r / float64(len(ref)),
	}
	if res.Precision+res.Recall != 0 {
		res.F1 = 2 * res.Precision * res.Recall / (res.Precision + res.Recall)
	}
	return res
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for k := range min(len(a), len(b)) {
		dot += float64(a[k]) * float64(b[k])
	}
	for _, v := range a {
		na += float64(v) * float64(v)
	}
	for _, v := range b {
		nb += float64(v) * float64(v)
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
