package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/mpm/matching"
)

// renderResult prints the pairs followed by a per-class coverage footer.
func renderResult(w io.Writer, res *matching.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "U", "V"})
	for i, p := range res.Pairs {
		t.AppendRow(table.Row{i + 1, p.U, p.V})
	}
	t.AppendFooter(table.Row{"", "score", res.Score.String()})
	t.Render()
}

// renderComparison prints given and optimal coverage side by side, one row
// per priority class that has a matched vertex in either, highest first.
func renderComparison(w io.Writer, given, best matching.Score) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"priority", "given", "optimal"})
	for i := 0; i < len(best); i++ {
		if given.Covered(i+1) == 0 && best.Covered(i+1) == 0 {
			continue
		}
		t.AppendRow(table.Row{i + 1, given.Covered(i + 1), best.Covered(i + 1)})
	}
	verdict := "optimal"
	if given.Compare(best) < 0 {
		verdict = "suboptimal"
	}
	t.AppendFooter(table.Row{verdict, given.String(), best.String()})
	t.Render()
}
