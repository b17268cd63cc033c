/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package jawaher implements the Jawaher Arabic proverb benchmark and the
// MAPS idiom benchmark as tasks.
//
// Each task reads its dataset into typed records, derives new records with
// pure transformers (option shuffling, completion splitting, answer key
// normalization, sentiment phase expansion) and renders prompts with
// promptbuilder templates that end in an answer cue.
//
//	registry := tasks.NewRegistry()
//	if err := jawaher.Register(registry); err != nil {
//		return err
//	}
//	spec, err := registry.Lookup("jawaher_mcq")
//
// Option shuffling draws from a Mersenne Twister built by NewRand from the task
// config seed, so a fixed seed and a fixed document order always produce
// the same option placement.
package jawaher
