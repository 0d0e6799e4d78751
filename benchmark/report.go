package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// PrintReport outputs a human-readable summary report.
func PrintReport(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "\n%s\n", r.ID)
		fmt.Fprintf(w, "  Range:           [%d, %s]\n", r.Low, FormatBound(r.High))
		fmt.Fprintf(w, "  Iterations:      %d\n", r.Iterations)
		fmt.Fprintf(w, "  Time/op:         %s\n", time.Duration(r.NsPerOp))
		fmt.Fprintf(w, "  Allocs/op:       %d (%d B)\n", r.AllocsPerOp, r.BytesPerOp)
		if r.Samples.Count > 0 {
			fmt.Fprintf(w, "  Samples:         %d\n", r.Samples.Count)
			fmt.Fprintf(w, "    Min:           %s\n", r.Samples.Min)
			fmt.Fprintf(w, "    Mean:          %s (± %s)\n", r.Samples.Mean, r.Samples.StdDev)
			fmt.Fprintf(w, "    P50:           %s\n", r.Samples.P50)
			fmt.Fprintf(w, "    P90:           %s\n", r.Samples.P90)
			fmt.Fprintf(w, "    P99:           %s\n", r.Samples.P99)
			fmt.Fprintf(w, "    Max:           %s\n", r.Samples.Max)
		}
		if r.Baseline != nil {
			fmt.Fprintf(
				w,
				"  Change:          %+.2f%% vs %s (%s)\n",
				r.Baseline.ChangePct,
				r.Baseline.Baseline,
				r.Baseline.Verdict,
			)
		}
	}
}

// PrintJSONReport outputs a JSON-formatted report.
func PrintJSONReport(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
