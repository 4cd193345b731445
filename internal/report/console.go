package report

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable prints the per-suite summary as a console table.
func RenderTable(w io.Writer, summary *Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Suite", "Passed", "Failed", "Skipped", "Duration"})

	for _, suite := range summary.Suites {
		t.AppendRow(table.Row{
			suite.Name,
			suite.Passed,
			colorFailed(suite.Failed),
			suite.Skipped,
			suite.Duration().Round(timeRounding),
		})
	}

	t.AppendFooter(table.Row{
		"Total",
		summary.Passed,
		colorFailed(summary.Failed),
		summary.Skipped,
		summary.Finished.Sub(summary.Started).Round(timeRounding),
	})
	t.Render()
}

const timeRounding = 10 * time.Millisecond

func colorFailed(n int) interface{} {
	if n == 0 {
		return n
	}
	return text.FgRed.Sprintf("%d", n)
}
