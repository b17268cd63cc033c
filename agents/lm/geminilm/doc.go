/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package geminilm adapts the Gemini generate-content API to the lm.Model
// contract.
//
// GEMINI_API_KEY is read once, in New. Each request becomes one
// generate-content call with the resolved max output tokens, temperature,
// top-p, the adapter's top-k and at most four stop sequences. Responses
// without a candidate, content or text part produce "" for that request and
// the batch continues.
package geminilm
