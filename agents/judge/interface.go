/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
)

const (
	// MinRating is the lowest rating on the scale.
	MinRating = 1
	// MaxRating is the highest rating on the scale.
	MaxRating = 5
)

// ErrNoRating is returned when a judge reply carries no rating in range.
var ErrNoRating = errors.New("no rating between 1 and 5 in judge reply")

// Interface rates one prediction against its reference.
type Interface interface {
	Rate(ctx context.Context, prediction, reference string) (int, error)
}
