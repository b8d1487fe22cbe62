package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/ner-eval/internal/evaluate"
	"github.com/DjordjeVuckovic/ner-eval/internal/metrics"
)

var header = []string{"Scope", "Precision", "Recall", "F1", "Accuracy", "TP", "FP", "FN", "TN"}

// WriteTable renders a full evaluation result.
func WriteTable(r *evaluate.Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Entity Evaluation ===\n\n")
	writeHeader(tw)
	writeRow(tw, "micro", r.Micro)
	writeRow(tw, "macro", r.Macro)
	fmt.Fprintln(tw)

	if len(r.PerClass) > 0 {
		fmt.Fprintf(tw, "Per-Class Results (%d classes)\n\n", len(r.PerClass))
		writeHeader(tw)
		for _, m := range r.PerClass {
			writeRow(tw, m.Class, m)
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}

// WriteMetricsTable renders a single record under the given scope name.
func WriteMetricsTable(scope string, m *metrics.Metrics, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw)
	writeHeader(tw)
	writeRow(tw, scope, *m)
	fmt.Fprintln(tw)

	tw.Flush()
}

func writeHeader(tw *tabwriter.Writer) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func writeRow(tw *tabwriter.Writer, scope string, m metrics.Metrics) {
	row := []string{
		scope,
		fmtScore(m.Precision),
		fmtScore(m.Recall),
		fmtScore(m.F1),
		fmtScore(m.Accuracy),
		fmt.Sprintf("%d", m.TP),
		fmt.Sprintf("%d", m.FP),
		fmt.Sprintf("%d", m.FN),
		fmt.Sprintf("%d", m.TN),
	}
	fmt.Fprintln(tw, strings.Join(row, "\t"))
}

func fmtScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
