/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"chainguard.dev/jawaher/agents/evals"
	"chainguard.dev/jawaher/agents/evals/report"
	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/lm/claudelm"
	"chainguard.dev/jawaher/scoring"
	"chainguard.dev/jawaher/tasks"
	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

type runFlags struct {
	backend          string
	model            string
	taskNames        []string
	configPaths      []string
	dataset          string
	limit            int
	seed             uint64
	logSamples       string
	metricsTextfile  string
	claudeJudgeModel string
	openAIJudgeModel string
	embeddingModel   string
	format           string
	threshold        float64
	disableProgress  bool
}

// job is one task evaluation with its effective config.
type job struct {
	spec tasks.Spec
	cfg  tasks.Config
}

// samplesLog is what --log-samples writes.
type samplesLog struct {
	Results []evals.TaskResult `json:"results"`
	Cache   []lm.CacheEntry    `json:"cache"`
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a model on one or more tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.backend, "backend", claudelm.Backend, "Model backend: claude, gemini or openai")
	fs.StringVar(&f.model, "model", "", "Model identifier (defaults to the backend default)")
	fs.StringSliceVar(&f.taskNames, "task", nil, "Registered task names to run")
	fs.StringSliceVar(&f.configPaths, "config", nil, "Task config YAML files to run")
	fs.StringVar(&f.dataset, "dataset", "", "Dataset path, overriding every task config")
	fs.IntVar(&f.limit, "limit", 0, "Evaluate only the first N documents of each task")
	fs.Uint64Var(&f.seed, "seed", 0, "Seed for option shuffling")
	fs.StringVar(&f.logSamples, "log-samples", "", "Write per-sample predictions and the generation cache to this JSON file")
	fs.StringVar(&f.metricsTextfile, "metrics-textfile", "", "Write task scores to this Prometheus textfile")
	fs.StringVar(&f.claudeJudgeModel, "claude-judge-model", "", "Model for the llm_judge_claude metric")
	fs.StringVar(&f.openAIJudgeModel, "openai-judge-model", "", "Model for the llm_judge_openai metric")
	fs.StringVar(&f.embeddingModel, "embedding-model", "", "Gemini embedding model for the bertscore metrics")
	fs.StringVar(&f.format, "format", "table", "Report format: table or tree")
	fs.Float64Var(&f.threshold, "threshold", 0, "Fail the run when any normalized score is below this value; tree reports mark those scores")
	fs.BoolVar(&f.disableProgress, "disable-progress", false, "Silence per-request progress logging")
	return cmd
}

func run(cmd *cobra.Command, f runFlags) error {
	ctx := cmd.Context()
	if f.format != "table" && f.format != "tree" {
		return fmt.Errorf("unknown report format %q", f.format)
	}

	registry, err := newTaskRegistry()
	if err != nil {
		return err
	}
	jobs, err := plan(registry, f)
	if err != nil {
		return err
	}

	cache := &lm.MemoryCache{}
	model, err := newModel(ctx, f.backend, f.model, cache)
	if err != nil {
		return err
	}
	label := f.model
	if label == "" {
		label = f.backend
	}

	metrics := scoring.NewStandardRegistry(scoringDependencies(f.claudeJudgeModel, f.openAIJudgeModel, f.embeddingModel))
	opts := tasks.EvalOptions{Model: label, LogSamples: f.logSamples != "", DisableProgress: f.disableProgress}

	results := make([]evals.TaskResult, 0, len(jobs))
	for _, j := range jobs {
		res, err := tasks.Evaluate(ctx, model, j.spec, j.cfg, metrics, opts)
		if err != nil {
			return err
		}
		clog.FromContext(ctx).Info(res.String())
		results = append(results, res)
	}

	if err := writeReport(cmd, f, results); err != nil {
		return err
	}
	if f.metricsTextfile != "" {
		if err := evals.WriteTextfile(f.metricsTextfile, results); err != nil {
			return fmt.Errorf("writing metrics textfile: %w", err)
		}
	}
	if f.logSamples != "" {
		if err := writeSamples(f.logSamples, samplesLog{Results: results, Cache: cache.Entries()}); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}
	return nil
}

// plan resolves --task and --config into jobs, in flag order. Command-line
// overrides apply to every job.
func plan(registry *tasks.Registry, f runFlags) ([]job, error) {
	if len(f.taskNames) == 0 && len(f.configPaths) == 0 {
		return nil, errors.New("at least one --task or --config is required")
	}

	var jobs []job
	add := func(cfg tasks.Config) error {
		spec, err := registry.Lookup(cfg.Task)
		if err != nil {
			return err
		}
		if f.dataset != "" {
			cfg.DatasetPath = f.dataset
		}
		if f.limit != 0 {
			cfg.Limit = f.limit
		}
		if f.seed != 0 {
			cfg.Seed = f.seed
		}
		jobs = append(jobs, job{spec: spec, cfg: cfg})
		return nil
	}

	for _, name := range f.taskNames {
		if err := add(tasks.Config{Task: name}); err != nil {
			return nil, err
		}
	}
	for _, path := range f.configPaths {
		cfg, err := tasks.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		if cfg.Task == "" {
			return nil, fmt.Errorf("%s: task is required", path)
		}
		if err := add(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return jobs, nil
}

func writeReport(cmd *cobra.Command, f runFlags, results []evals.TaskResult) error {
	var (
		out string
		err error
	)
	if f.format == "tree" {
		out, err = report.Tree(results, f.threshold)
	} else {
		out, err = report.Table(results)
	}
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
		return err
	}

	if f.threshold > 0 {
		if below := report.Below(results, f.threshold); len(below) > 0 {
			return fmt.Errorf("%d metrics below threshold %g: %s", len(below), f.threshold, strings.Join(below, ", "))
		}
	}
	return nil
}

func writeSamples(path string, log samplesLog) error {
	b, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
