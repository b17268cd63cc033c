/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package tasks connects datasets, prompts, models and metrics.
//
// A Spec turns a dataset into Instances: a prompt, the expected target and
// the document it came from. Evaluate sends every prompt through the model
// in a single GenerateUntil batch, then scores the predictions with each
// metric named in the task Config.
//
// Datasets are ordered and transformations preserve order: the seeded
// shuffles in task documents depend on it.
package tasks
