package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

// RenderChart writes a standalone HTML page to w with two charts over the
// sweep: expected hits per cell vs opening angle (with the minimum hit count
// as a mark line) and line spacing / total coverage vs opening angle.
func RenderChart(w io.Writer, res sweep.Result) error {
	page := components.NewPage()
	page.PageTitle = "MBES Line Spacing Plan"
	page.AddCharts(hitsChart(res), coverageChart(res))
	return page.Render(w)
}

// WriteChartFile renders the sweep charts to an HTML file at path.
func WriteChartFile(path string, res sweep.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()
	return RenderChart(f, res)
}

func hitsChart(res sweep.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Expected hits per cell",
			Subtitle: fmt.Sprintf("depth=%.1fm cell=%.2fm min=%d", res.Config.Depth, res.Config.CellSize, res.Config.MinHitCount),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Opening angle (°)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hits per cell"}),
	)

	data := make([]opts.LineData, 0, len(res.Results))
	for _, r := range res.Results {
		data = append(data, opts.LineData{Value: r.HitsPerCell})
	}
	line.SetXAxis(angleLabels(res)).AddSeries("hits per cell", data,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "minimum",
			YAxis: res.Config.MinHitCount,
		}),
	)
	return line
}

func coverageChart(res sweep.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Swath coverage and line spacing",
			Subtitle: fmt.Sprintf("overlap=%.0f%%", res.Config.OverlapPercent),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Opening angle (°)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Meters"}),
	)

	coverage := make([]opts.LineData, 0, len(res.Results))
	spacing := make([]opts.LineData, 0, len(res.Results))
	for _, r := range res.Results {
		coverage = append(coverage, opts.LineData{Value: r.TotalCoverageM})
		spacing = append(spacing, opts.LineData{Value: r.LineSpacingM})
	}
	line.SetXAxis(angleLabels(res)).
		AddSeries("total coverage (m)", coverage).
		AddSeries("line spacing (m)", spacing)
	return line
}

func angleLabels(res sweep.Result) []string {
	labels := make([]string, 0, len(res.Results))
	for _, r := range res.Results {
		labels = append(labels, fmt.Sprintf("%d", r.OpeningAngleDeg))
	}
	return labels
}
