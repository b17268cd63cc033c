/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// jawaher evaluates hosted language models on the Jawaher and MAPS
// benchmarks.
//
// Usage:
//
//	jawaher tasks
//	jawaher schema
//	jawaher run --backend=claude --model=claude-3-5-haiku-latest --task=jawaher_mcq --dataset=jawaher.jsonl
//	jawaher run --backend=openai --config=tasks/explain.yaml --metrics-textfile=/var/lib/node_exporter/jawaher.prom
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jawaher",
		Short: "Evaluate hosted language models on Arabic proverb benchmarks",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := clog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(clog.WithLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.AddCommand(newRunCmd(), newTasksCmd(), newSchemaCmd())
	root.Version = version
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		clog.FatalContextf(ctx, "jawaher: %v", err)
	}
}
