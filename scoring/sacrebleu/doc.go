/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package sacrebleu computes corpus-level BLEU and chrF with the default
// settings of the sacreBLEU reference implementation, so that scores are
// comparable with published numbers.
//
// BLEU uses the 13a tokenizer, n-grams up to order 4, exponential smoothing
// and the standard brevity penalty. chrF uses character n-grams up to order
// 6, no word n-grams, beta 2, and ignores whitespace. Both take one
// reference per hypothesis and return a score in [0,100].
package sacrebleu
