/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openailm adapts the OpenAI Responses API to the lm.Model contract.
//
// OPENAI_API_KEY is read once, in New. The Responses endpoint has no stop
// parameter, so the adapter cuts the returned text at the earliest of the
// (at most four) resolved stop sequences.
package openailm
