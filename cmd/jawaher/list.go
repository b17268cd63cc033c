/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"chainguard.dev/jawaher/tasks"
	"chainguard.dev/jawaher/tasks/jawaher"
	"github.com/spf13/cobra"
)

func newTaskRegistry() (*tasks.Registry, error) {
	r := tasks.NewRegistry()
	if err := jawaher.Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the registered tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newTaskRegistry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range r.Names() {
				spec, err := r.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-20s %s (metrics: %v)\n", name, spec.Description(), spec.Defaults().Metrics())
			}
			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of task config files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := tasks.ConfigSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return err
		},
	}
}
