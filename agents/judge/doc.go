/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judge rates generated answers against references with a second,
// hosted language model.
//
// The judge sends one rubric prompt per (prediction, reference) pair and reads
// a 1-5 Likert rating from the reply: the first token made only of digits
// whose value lies in [1,5]. A reply without such a token is an error
// (ErrNoRating); it is never scored as zero.
//
//	j, err := judge.NewClaude(ctx)
//	if err != nil {
//		return err
//	}
//	rating, err := j.Rate(ctx, prediction, reference)
//
// Calls are issued one at a time; the judge keeps no state between them.
package judge
