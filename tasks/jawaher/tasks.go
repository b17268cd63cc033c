/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package jawaher

import (
	"context"
	"fmt"

	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/scoring"
	"chainguard.dev/jawaher/tasks"
	"github.com/chainguard-dev/clog"
)

// Registered task names.
const (
	TaskMCQ             = "jawaher_mcq"
	TaskMCQEnglish      = "jawaher_mcq_en"
	TaskMCQFixedA       = "jawaher_mcq_fixed_a"
	TaskMCQFixedB       = "jawaher_mcq_fixed_b"
	TaskCompletion      = "jawaher_completion"
	TaskExplainArabic   = "jawaher_explain_ar"
	TaskExplainEnglish  = "jawaher_explain_en"
	TaskSentiment       = "jawaher_sentiment"
	TaskIdiomMCQ        = "maps_mcq"
	TaskIdiomMCQContext = "maps_mcq_context"
)

// Default dataset locations, relative to the working directory.
const (
	DefaultProverbDataset = "jawaher.jsonl"
	DefaultIdiomDataset   = "maps.jsonl"
)

type spec struct {
	name        string
	description string
	defaults    tasks.Config
	build       func(ctx context.Context, cfg tasks.Config) ([]tasks.Instance, error)
}

var _ tasks.Spec = (*spec)(nil)

func (s *spec) Name() string           { return s.name }
func (s *spec) Description() string    { return s.description }
func (s *spec) Defaults() tasks.Config { return s.defaults }

func (s *spec) Build(ctx context.Context, cfg tasks.Config) ([]tasks.Instance, error) {
	return s.build(ctx, cfg)
}

func choiceOptions() lm.Options {
	return lm.Options{MaxGenToks: lm.Ptr[int64](8), Temperature: lm.Ptr(0.0)}
}

// shortAnswer scores only the first line of each prediction. A newline
// stop would be dropped by every hosted adapter.
func shortAnswer(cfg tasks.Config) tasks.Config {
	cfg.FirstLineOnly = lm.Ptr(true)
	return cfg
}

func config(dataset string, gen lm.Options, metrics ...string) tasks.Config {
	cfg := tasks.Config{DatasetPath: dataset, GenerationKwargs: gen}
	for _, m := range metrics {
		cfg.MetricList = append(cfg.MetricList, tasks.MetricConfig{Metric: m})
	}
	return cfg
}

func load[T any](ctx context.Context, cfg tasks.Config) (tasks.Dataset[T], error) {
	ds, err := tasks.Load[T](cfg.DatasetPath)
	if err != nil {
		return tasks.Dataset[T]{}, err
	}
	ds = ds.Limit(cfg.Limit)
	clog.FromContext(ctx).With("dataset", cfg.DatasetPath).With("documents", ds.Len()).Debug("Loaded dataset")
	return ds, nil
}

func instances[T any](ds tasks.Dataset[T], f func(T) (tasks.Instance, error)) ([]tasks.Instance, error) {
	out, err := tasks.MapErr(ds, f)
	if err != nil {
		return nil, err
	}
	return out.Records(), nil
}

func choiceInstances(ds tasks.Dataset[ProverbChoice], render func(ProverbChoice) (string, error)) ([]tasks.Instance, error) {
	return instances(ds, func(c ProverbChoice) (tasks.Instance, error) {
		prompt, err := render(c)
		if err != nil {
			return tasks.Instance{}, err
		}
		return tasks.Instance{ID: c.ID, Prompt: prompt, Target: AnswerLetter(c.Answer), Doc: c}, nil
	})
}

func mcqSpec(name, description string, choices func(cfg tasks.Config, ds tasks.Dataset[ProverbRecord]) tasks.Dataset[ProverbChoice], render func(ProverbChoice) (string, error)) *spec {
	return &spec{
		name:        name,
		description: description,
		defaults:    shortAnswer(config(DefaultProverbDataset, choiceOptions(), scoring.MetricAccuracy)),
		build: func(ctx context.Context, cfg tasks.Config) ([]tasks.Instance, error) {
			ds, err := load[ProverbRecord](ctx, cfg)
			if err != nil {
				return nil, err
			}
			return choiceInstances(choices(cfg, ds), render)
		},
	}
}

func shuffled(cfg tasks.Config, ds tasks.Dataset[ProverbRecord]) tasks.Dataset[ProverbChoice] {
	return ShuffleExplanations(NewRand(cfg.Seed), ds)
}

func fixed(correctIndex int) func(tasks.Config, tasks.Dataset[ProverbRecord]) tasks.Dataset[ProverbChoice] {
	return func(_ tasks.Config, ds tasks.Dataset[ProverbRecord]) tasks.Dataset[ProverbChoice] {
		return FixedOrder(ds, correctIndex)
	}
}

func explainSpec(name, description string, render func(ProverbRecord) (string, error), target func(ProverbRecord) string) *spec {
	gen := lm.Options{MaxGenToks: lm.Ptr[int64](256), Temperature: lm.Ptr(0.0)}
	return &spec{
		name:        name,
		description: description,
		defaults:    config(DefaultProverbDataset, gen, scoring.MetricArabicBLEU, scoring.MetricArabicChrF),
		build: func(ctx context.Context, cfg tasks.Config) ([]tasks.Instance, error) {
			ds, err := load[ProverbRecord](ctx, cfg)
			if err != nil {
				return nil, err
			}
			return instances(ds, func(r ProverbRecord) (tasks.Instance, error) {
				prompt, err := render(r)
				if err != nil {
					return tasks.Instance{}, err
				}
				return tasks.Instance{ID: r.ID, Prompt: prompt, Target: target(r), Doc: r}, nil
			})
		},
	}
}

func idiomSpec(name, description string, render func(IdiomRecord) (string, error)) *spec {
	return &spec{
		name:        name,
		description: description,
		defaults:    shortAnswer(config(DefaultIdiomDataset, choiceOptions(), scoring.MetricAccuracy)),
		build: func(ctx context.Context, cfg tasks.Config) ([]tasks.Instance, error) {
			ds, err := load[IdiomRecord](ctx, cfg)
			if err != nil {
				return nil, err
			}
			return instances(UppercaseAnswerKey(ds), func(r IdiomRecord) (tasks.Instance, error) {
				prompt, err := render(r)
				if err != nil {
					return tasks.Instance{}, err
				}
				return tasks.Instance{ID: r.ID, Prompt: prompt, Target: r.AnswerKey, Doc: r}, nil
			})
		},
	}
}

// Specs returns every benchmark task.
func Specs() []tasks.Spec {
	return []tasks.Spec{
		mcqSpec(TaskMCQ, "Pick the correct Arabic explanation of a proverb (shuffled A/B)", shuffled, ProverbMCQ),
		mcqSpec(TaskMCQEnglish, "Pick the correct English explanation of a proverb (shuffled A/B)",
			func(cfg tasks.Config, ds tasks.Dataset[ProverbRecord]) tasks.Dataset[ProverbChoice] {
				return shuffled(cfg, EnglishDistractors(ds))
			}, ProverbMCQEnglish),
		mcqSpec(TaskMCQFixedA, "Pick the correct Arabic explanation, always option A", fixed(0), ProverbMCQ),
		mcqSpec(TaskMCQFixedB, "Pick the correct Arabic explanation, always option B", fixed(1), ProverbMCQ),
		&spec{
			name:        TaskCompletion,
			description: "Supply the missing final word of a proverb",
			defaults: shortAnswer(config(DefaultProverbDataset,
				lm.Options{MaxGenToks: lm.Ptr[int64](16), Temperature: lm.Ptr(0.0)},
				scoring.MetricArabicExactMatch)),
			build: func(ctx context.Context, cfg tasks.Config) ([]tasks.Instance, error) {
				ds, err := load[ProverbRecord](ctx, cfg)
				if err != nil {
					return nil, err
				}
				return instances(SplitCompletion(ds), func(c CompletionItem) (tasks.Instance, error) {
					prompt, err := ProverbCompletion(c)
					if err != nil {
						return tasks.Instance{}, err
					}
					return tasks.Instance{ID: c.ID, Prompt: prompt, Target: c.Target, Doc: c}, nil
				})
			},
		},
		explainSpec(TaskExplainArabic, "Explain a proverb in Arabic", ExplainProverbArabic,
			func(r ProverbRecord) string { return r.Explanation }),
		explainSpec(TaskExplainEnglish, "Explain a proverb in English", ExplainProverbEnglish,
			func(r ProverbRecord) string { return r.EnglishExplanation }),
		&spec{
			name:        TaskSentiment,
			description: "Label the sentiment of a proverb and of its explanation",
			defaults:    shortAnswer(config(DefaultProverbDataset, choiceOptions(), scoring.MetricSentimentConsistency)),
			build: func(ctx context.Context, cfg tasks.Config) ([]tasks.Instance, error) {
				ds, err := load[ProverbRecord](ctx, cfg)
				if err != nil {
					return nil, err
				}
				return instances(ExpandSentimentPhases(ds), func(s SentimentItem) (tasks.Instance, error) {
					prompt, err := Sentiment(s)
					if err != nil {
						return tasks.Instance{}, err
					}
					return tasks.Instance{ID: s.ID + "/" + s.Phase, Prompt: prompt, Target: s.Label, Doc: s}, nil
				})
			},
		},
		idiomSpec(TaskIdiomMCQ, "Pick the meaning of an idiom from four options", IdiomMCQ),
		idiomSpec(TaskIdiomMCQContext, "Pick the meaning of an idiom used in a conversation", IdiomMCQWithContext),
	}
}

// Register adds every benchmark task to r.
func Register(r *tasks.Registry) error {
	if err := r.Register(Specs()...); err != nil {
		return fmt.Errorf("registering jawaher tasks: %w", err)
	}
	return nil
}
