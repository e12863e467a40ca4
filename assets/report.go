package assets

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable prints the report as a table followed by a status summary.
func (r Report) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Status", "Size"})
	var total uint64
	for _, res := range r.Results {
		size := "-"
		if res.Status != StatusMissing {
			size = humanize.Bytes(uint64(res.Size))
		}
		if res.Status == StatusCopied {
			total += uint64(res.Size)
		}
		t.AppendRow(table.Row{res.Entry.Dst, string(res.Status), size})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d copied", r.Count(StatusCopied)), humanize.Bytes(total)})
	t.Render()
	fmt.Fprintf(w, "%d copied, %d up-to-date, %d missing, %d failed\n",
		r.Count(StatusCopied), r.Count(StatusUpToDate), r.Count(StatusMissing), r.Count(StatusFailed))
}
