/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package evals holds the results of benchmark runs and exports them.
//
// A TaskResult records, for one task and one model, the score of every
// configured metric plus (optionally) the per-instance samples. Results are
// exported as Prometheus gauges, either into a caller-provided registry or
// as a node-exporter textfile:
//
//	if err := evals.WriteTextfile(path, results); err != nil {
//		return err
//	}
//
// Task evaluation runs inside an OpenTelemetry span started with StartSpan.
package evals
