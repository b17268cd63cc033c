/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders task results for humans.
//
// Table produces a markdown table with one row per task and metric. Tree
// groups the same results by model and task and flags every metric whose
// normalized score falls below a threshold.
package report
