/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Exporter owns the Prometheus collectors for task results.
type Exporter struct {
	score   *prometheus.GaugeVec
	samples *prometheus.GaugeVec
}

// NewExporter creates the collectors and registers them with reg.
func NewExporter(reg prometheus.Registerer) (*Exporter, error) {
	e := &Exporter{
		score: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jawaher_task_score",
				Help: "Most recent score of a metric over a task",
			},
			[]string{"task", "model", "metric"},
		),
		samples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jawaher_task_instances",
				Help: "Number of instances evaluated in the most recent run of a task",
			},
			[]string{"task", "model"},
		),
	}
	for _, c := range []prometheus.Collector{e.score, e.samples} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return e, nil
}

// Observe sets the gauges for every result.
func (e *Exporter) Observe(results ...TaskResult) {
	for _, r := range results {
		e.samples.With(prometheus.Labels{"task": r.Task, "model": r.Model}).Set(float64(r.N))
		for _, m := range r.Metrics {
			e.score.With(prometheus.Labels{
				"task":   r.Task,
				"model":  r.Model,
				"metric": m.Name,
			}).Set(m.Score)
		}
	}
}

// WriteTextfile writes results to path in the Prometheus text format, for
// the node exporter textfile collector.
func WriteTextfile(path string, results []TaskResult) error {
	reg := prometheus.NewRegistry()
	e, err := NewExporter(reg)
	if err != nil {
		return err
	}
	e.Observe(results...)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
