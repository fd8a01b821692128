package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"venuematch/internal/resolve"
)

// newTable builds a table writer, styled only when writing to a terminal.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleLight)
	}
	return t
}

func renderCandidates(w io.Writer, candidates []resolve.ScoredCandidate) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Venue", "ID", "Score"})
	for i, candidate := range candidates {
		t.AppendRow(table.Row{i + 1, candidate.Name, candidate.ID, fmt.Sprintf("%.2f", candidate.Score)})
	}
	t.Render()
}
