/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package scoring

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"chainguard.dev/jawaher/agents/evals"
	"chainguard.dev/jawaher/agents/judge"
	"chainguard.dev/jawaher/scoring/bertscore"
)

// Registered metric names.
const (
	MetricArabicExactMatch     = "arabic_exact_match"
	MetricEnglishExactMatch    = "english_exact_match"
	MetricAccuracy             = "acc"
	MetricArabicBLEU           = "arabic_bleu"
	MetricArabicChrF           = "arabic_chrf"
	MetricBERTScoreF1          = "bertscore_f1"
	MetricBERTScorePrecision   = "bertscore_precision"
	MetricBERTScoreRecall      = "bertscore_recall"
	MetricJudgeClaude          = "llm_judge_claude"
	MetricJudgeOpenAI          = "llm_judge_openai"
	MetricSentimentConsistency = "sentiment_consistency"
)

// Sample is one prediction with its reference and source document.
type Sample struct {
	Prediction string
	Reference  string
	Doc        any
}

// Metric scores a whole task.
type Metric interface {
	Name() string
	Compute(ctx context.Context, samples []Sample) (evals.MetricResult, error)
}

// PairFunc scores parallel predictions and references.
type PairFunc func(ctx context.Context, predictions, references []string) (float64, error)

// Pure lifts a context-free scorer into a PairFunc.
func Pure(f func(predictions, references []string) (float64, error)) PairFunc {
	return func(_ context.Context, predictions, references []string) (float64, error) {
		return f(predictions, references)
	}
}

type pairMetric struct {
	name  string
	max   float64
	score PairFunc
}

// NewPairMetric wraps a PairFunc whose values lie in [0, max].
func NewPairMetric(name string, max float64, score PairFunc) Metric {
	return &pairMetric{name: name, max: max, score: score}
}

func (m *pairMetric) Name() string { return m.name }

func (m *pairMetric) Compute(ctx context.Context, samples []Sample) (evals.MetricResult, error) {
	preds := make([]string, len(samples))
	refs := make([]string, len(samples))
	for i, s := range samples {
		preds[i], refs[i] = s.Prediction, s.Reference
	}
	score, err := m.score(ctx, preds, refs)
	if err != nil {
		return evals.MetricResult{}, fmt.Errorf("%s: %w", m.name, err)
	}
	return evals.MetricResult{Name: m.name, Score: score, Max: m.max, N: len(samples)}, nil
}

type sentimentMetric struct{}

func (sentimentMetric) Name() string { return MetricSentimentConsistency }

func (sentimentMetric) Compute(_ context.Context, samples []Sample) (evals.MetricResult, error) {
	preds := make([]string, len(samples))
	docs := make([]SentimentKeyed, len(samples))
	for i, s := range samples {
		k, ok := s.Doc.(SentimentKeyed)
		if !ok {
			return evals.MetricResult{}, fmt.Errorf("%s: sample %d: document %T has no sentiment key", MetricSentimentConsistency, i, s.Doc)
		}
		preds[i], docs[i] = s.Prediction, k
	}
	c, err := SentimentConsistency(preds, docs)
	if err != nil {
		return evals.MetricResult{}, fmt.Errorf("%s: %w", MetricSentimentConsistency, err)
	}
	return evals.MetricResult{
		Name:    MetricSentimentConsistency,
		Score:   c.Score,
		Max:     1,
		N:       c.N,
		Details: c.Mismatches,
	}, nil
}

// Factory builds a metric the first time a task asks for it.
type Factory func(ctx context.Context) (Metric, error)

// Registry maps metric names to metrics, building each lazily.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	built     map[string]Metric
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		built:     make(map[string]Metric),
	}
}

// Register adds a metric factory under name.
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("metric %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Get returns the named metric, building it on first use.
func (r *Registry) Get(ctx context.Context, name string) (Metric, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.built[name]; ok {
		return m, nil
	}
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (known: %v)", name, slices.Sorted(maps.Keys(r.factories)))
	}
	m, err := f(ctx)
	if err != nil {
		return nil, fmt.Errorf("building metric %q: %w", name, err)
	}
	r.built[name] = m
	return m, nil
}

// Names returns the sorted registered names.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.factories))
}

func static(m Metric) Factory {
	return func(context.Context) (Metric, error) { return m, nil }
}

// Dependencies supplies the hosted services some metrics need. Nil fields
// leave the corresponding metrics unregistered.
type Dependencies struct {
	ClaudeJudge func(ctx context.Context) (judge.Interface, error)
	OpenAIJudge func(ctx context.Context) (judge.Interface, error)
	Encoder     func(ctx context.Context) (bertscore.Encoder, error)
}

// NewStandardRegistry registers every metric the benchmark tasks use.
func NewStandardRegistry(deps Dependencies) *Registry {
	r := NewRegistry()
	must := func(name string, f Factory) {
		if err := r.Register(name, f); err != nil {
			panic(err)
		}
	}

	must(MetricArabicExactMatch, static(NewPairMetric(MetricArabicExactMatch, 1, Pure(ArabicExactMatch))))
	must(MetricEnglishExactMatch, static(NewPairMetric(MetricEnglishExactMatch, 1, Pure(EnglishExactMatch))))
	must(MetricAccuracy, static(NewPairMetric(MetricAccuracy, 1, Pure(ChoiceAccuracy))))
	must(MetricArabicBLEU, static(NewPairMetric(MetricArabicBLEU, 1, Pure(ArabicBLEU))))
	must(MetricArabicChrF, static(NewPairMetric(MetricArabicChrF, 1, Pure(ArabicChrF))))
	must(MetricSentimentConsistency, static(sentimentMetric{}))

	for name, newJudge := range map[string]func(context.Context) (judge.Interface, error){
		MetricJudgeClaude: deps.ClaudeJudge,
		MetricJudgeOpenAI: deps.OpenAIJudge,
	} {
		if newJudge == nil {
			continue
		}
		must(name, func(ctx context.Context) (Metric, error) {
			j, err := newJudge(ctx)
			if err != nil {
				return nil, err
			}
			return NewPairMetric(name, judge.MaxRating, func(ctx context.Context, p, r []string) (float64, error) {
				return JudgeScore(ctx, j, p, r)
			}), nil
		})
	}

	if deps.Encoder != nil {
		for name, score := range map[string]func(context.Context, bertscore.Encoder, []string, []string) (float64, error){
			MetricBERTScoreF1:        BERTScoreF1,
			MetricBERTScorePrecision: BERTScorePrecision,
			MetricBERTScoreRecall:    BERTScoreRecall,
		} {
			must(name, func(ctx context.Context) (Metric, error) {
				enc, err := deps.Encoder(ctx)
				if err != nil {
					return nil, err
				}
				return NewPairMetric(name, 1, func(ctx context.Context, p, r []string) (float64, error) {
					return score(ctx, enc, p, r)
				}), nil
			})
		}
	}
	return r
}
