package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

const reportWidth = 74

// PrintSweep renders a sweep result to w, either as indented JSON or as the
// human-readable angle table with the optimal-angle summary.
func PrintSweep(w io.Writer, res sweep.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printHeader(w, res)
	printTable(w, res)
	printOptimal(w, res)
	return nil
}

func printHeader(w io.Writer, res sweep.Result) {
	cfg := res.Config
	fmt.Fprintf(w, "\n🌊 MBES LINE SPACING PLAN\n")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "Depth: %.1f m | Cell: %.2f m | Overlap: %.0f%% | Min hits: %d | Beams: %d | Speed: %.1f kn\n",
		cfg.Depth, cfg.CellSize, cfg.OverlapPercent, cfg.MinHitCount, cfg.BeamCount, cfg.SpeedKnots)
}

func printTable(w io.Writer, res sweep.Result) {
	fmt.Fprintf(w, "\n📊 RESULTS PER SWATH ANGLE\n")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "%-18s  %-17s  %-18s  %-10s  %s\n",
		"Opening angle (°)", "Line spacing (m)", "Total coverage (m)", "Hits/cell", "Meets")
	for _, r := range res.Results {
		meets := "❌"
		if r.Meets {
			meets = "✅"
		}
		fmt.Fprintf(w, "%-18d  %-17.2f  %-18.2f  %-10.1f  %s\n",
			r.OpeningAngleDeg, r.LineSpacingM, r.TotalCoverageM, r.HitsPerCell, meets)
	}
}

func printOptimal(w io.Writer, res sweep.Result) {
	fmt.Fprintln(w)
	if res.Optimal == nil {
		fmt.Fprintln(w, "❌ No swath angle meets the minimum hit count requirement.")
		fmt.Fprintln(w, strings.Repeat("=", reportWidth))
		return
	}
	fmt.Fprintf(w, "✔️  Maximum valid opening angle: %d°\n", res.Optimal.OpeningAngleDeg)
	fmt.Fprintf(w, "📏 Maximum line spacing (with %.0f%% overlap): %.2f m\n",
		res.Config.OverlapPercent, res.Optimal.LineSpacingM)
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
}
