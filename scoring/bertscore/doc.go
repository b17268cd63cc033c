/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package bertscore computes BERTScore: greedy cosine matching between the
// token embeddings of a candidate and its reference.
//
// Precision averages, over candidate tokens, the best similarity to any
// reference token. Recall does the same over reference tokens. F1 is their
// harmonic mean. Embeddings come from an Encoder; GeminiEncoder embeds each
// whitespace token through the Gemini embedding endpoint.
package bertscore
