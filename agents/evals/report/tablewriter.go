/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

var scoreHeaders = []string{"Task", "Model", "Metric", "Score", "N"}

// newScoreTable creates the markdown table of Table. Text columns are left
// aligned and the two numeric columns right aligned.
func newScoreTable(w io.Writer) *tablewriter.Table {
	numeric := tw.CellAlignment{
		Global:    tw.AlignLeft,
		PerColumn: []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight},
	}
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  numeric,
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row:      tw.CellConfig{Alignment: numeric},
		Behavior: tw.Behavior{TrimSpace: tw.On},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(scoreHeaders),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
