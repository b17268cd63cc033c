/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tasks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"chainguard.dev/jawaher/agents/lm"
	"chainguard.dev/jawaher/agents/schema"
	"gopkg.in/yaml.v3"
)

// MetricConfig names one metric of a task.
type MetricConfig struct {
	Metric string `json:"metric" yaml:"metric" jsonschema:"required"`
}

// Config is a task file.
type Config struct {
	Task             string         `json:"task" yaml:"task" jsonschema:"description=Registered task name,required"`
	DatasetPath      string         `json:"dataset_path,omitempty" yaml:"dataset_path,omitempty" jsonschema:"description=Path to a .jsonl .json or .csv dataset"`
	Seed             uint64         `json:"seed,omitempty" yaml:"seed,omitempty" jsonschema:"description=Seed for option shuffling"`
	Limit            int            `json:"limit,omitempty" yaml:"limit,omitempty" jsonschema:"description=Evaluate only the first N documents,minimum=0"`
	GenerationKwargs lm.Options     `json:"generation_kwargs,omitempty" yaml:"generation_kwargs,omitempty"`
	MetricList       []MetricConfig `json:"metric_list,omitempty" yaml:"metric_list,omitempty"`
	FirstLineOnly    *bool          `json:"first_line_only,omitempty" yaml:"first_line_only,omitempty" jsonschema:"description=Score only the first non-blank line of each prediction"`
}

// Metrics returns the metric names in order.
func (c Config) Metrics() []string {
	out := make([]string, 0, len(c.MetricList))
	for _, m := range c.MetricList {
		out = append(out, m.Metric)
	}
	return out
}

// Merge fills every unset field of c from defaults. Generation options
// merge field by field.
func (c Config) Merge(defaults Config) Config {
	if c.Task == "" {
		c.Task = defaults.Task
	}
	if c.DatasetPath == "" {
		c.DatasetPath = defaults.DatasetPath
	}
	if c.Seed == 0 {
		c.Seed = defaults.Seed
	}
	if c.Limit == 0 {
		c.Limit = defaults.Limit
	}
	if len(c.MetricList) == 0 {
		c.MetricList = defaults.MetricList
	}
	if c.FirstLineOnly == nil {
		c.FirstLineOnly = defaults.FirstLineOnly
	}
	g, d := &c.GenerationKwargs, defaults.GenerationKwargs
	if g.Until == nil {
		g.Until = d.Until
	}
	if g.MaxGenToks == nil {
		g.MaxGenToks = d.MaxGenToks
	}
	if g.Temperature == nil {
		g.Temperature = d.Temperature
	}
	if g.TopP == nil {
		g.TopP = d.TopP
	}
	return c
}

// Validate checks the fields every task needs.
func (c Config) Validate() error {
	var errs []error
	if c.Task == "" {
		errs = append(errs, errors.New("task is required"))
	}
	if c.DatasetPath == "" {
		errs = append(errs, errors.New("dataset_path is required"))
	}
	if c.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative, got %d", c.Limit))
	}
	if len(c.MetricList) == 0 {
		errs = append(errs, errors.New("metric_list must name at least one metric"))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a task file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig is LoadConfig over a reader.
func DecodeConfig(r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigSchema returns the JSON schema of task files.
func ConfigSchema() ([]byte, error) {
	return schema.MarshalIndent[Config]()
}
