/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudelm adapts the Anthropic Messages API to the lm.Model contract.
//
// The adapter reads ANTHROPIC_API_KEY once, in New, and fails with
// lm.ErrMissingCredential if it is absent:
//
//	model, err := claudelm.New(ctx,
//	    claudelm.WithModel("claude-3-opus-20240229"),
//	    claudelm.WithMaxTokens(128),
//	)
//	if err != nil {
//	    return err
//	}
//	outputs, err := model.GenerateUntil(ctx, requests, false)
//
// Each request becomes one synchronous messages call carrying the resolved
// max tokens, temperature, top-p and at most four stop sequences. The SDK's
// own retries are disabled; a failed call aborts the batch.
//
// Log-likelihood, token and logit access are rejected with lm.ErrNotSupported.
package claudelm
