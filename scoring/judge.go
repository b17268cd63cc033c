/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"context"
	"fmt"

	"chainguard.dev/jawaher/agents/judge"
	"github.com/chainguard-dev/clog"
)

// JudgeScore asks j to rate every pair, one call at a time, and returns the
// mean rating. The first failed call or unparsable reply aborts scoring.
func JudgeScore(ctx context.Context, j judge.Interface, predictions, references []string) (float64, error) {
	if err := checkParallel(predictions, references); err != nil {
		return 0, err
	}
	if len(predictions) == 0 {
		return 0, nil
	}
	log := clog.FromContext(ctx)

	total := 0
	for i := range predictions {
		rating, err := j.Rate(ctx, predictions[i], references[i])
		if err != nil {
			return 0, fmt.Errorf("judging pair %d of %d: %w", i+1, len(predictions), err)
		}
		total += rating
		log.With("pair", i+1).With("rating", rating).Debug("Judged pair")
	}
	return float64(total) / float64(len(predictions)), nil
}
