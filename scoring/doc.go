/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package scoring turns model predictions into benchmark metrics.
//
// Scorers take parallel, equal-length slices of predictions and references
// and return one number. Mean-based scorers return 0 for empty input. The
// Metric interface wraps a scorer for task configs, which name metrics by
// their registered name ("arabic_exact_match", "arabic_bleu", ...).
package scoring
