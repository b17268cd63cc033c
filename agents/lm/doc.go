/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package lm defines the contract between the evaluation harness and hosted
// language model backends.
//
// A backend implements Model. Hosted APIs only return text, so adapters embed
// HostedOnly to reject log-likelihood, token and logit access with an error
// wrapping ErrNotSupported:
//
//	type LM struct {
//	    lm.HostedOnly
//	    ...
//	}
//
// Generation is strictly sequential. GenerateUntil issues one call per request
// in input order, records every result in the CacheHook and returns exactly one
// string per request:
//
//	out, err := lm.GenerateUntil(ctx, adapter, hook, "claude", requests, false)
//
// Stop sequences are cleaned with NormalizeStopSequences before every call:
// blank entries are dropped and at most MaxStopSequences are forwarded.
//
// Credentials are read once with LoadCredential when an adapter is constructed.
// A missing variable yields ErrMissingCredential before any network call.
package lm
