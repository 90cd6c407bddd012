package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/sancognition/memsniff/pkg/model"
)

// Color codes
var (
	colorReset  = "\033[0m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

const (
	// MaxNameLen caps the PROCESS column; longer names are truncated
	// with a trailing ellipsis and never exceed this width.
	MaxNameLen = 28

	mib = 1024 * 1024
)

// RankByWorkingSet returns the top n records by working set, largest
// first. The input is not modified; n larger than the record count
// yields everything.
func RankByWorkingSet(records []model.Record, n int) []model.Record {
	ranked := make([]model.Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WorkingSetBytes > ranked[j].WorkingSetBytes
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// RenderTable prints the top records as an aligned table.
func RenderTable(w io.Writer, records []model.Record, topN int, colorEnabled bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No processes available.")
		return
	}

	ranked := RankByWorkingSet(records, topN)

	fmt.Fprintf(w, "Top %d processes by working set (physical ram):\n\n", len(ranked))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "PID\tPROCESS\tWORKING SET (MIB)\tPRIVATE (MIB)"
	if colorEnabled {
		fmt.Fprintf(tw, "%s%s%s\n", colorBlue, header, colorReset)
	} else {
		fmt.Fprintln(tw, header)
	}

	for _, r := range ranked {
		ws := fmt.Sprintf("%.2f", float64(r.WorkingSetBytes)/mib)
		if colorEnabled {
			if r.WorkingSetBytes > 1024*mib {
				ws = colorRed + ws + colorReset
			} else if r.WorkingSetBytes > 512*mib {
				ws = colorYellow + ws + colorReset
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\n",
			r.PID, TruncateName(r.Name), ws, float64(r.PrivateBytes)/mib)
	}
	tw.Flush()
}

// TruncateName limits a display name to MaxNameLen characters, marking
// the cut with an ellipsis.
func TruncateName(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	return name[:MaxNameLen-3] + "..."
}
