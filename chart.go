package benchcmp

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderChart renders the comparison as a standalone HTML page with a
// current and a baseline bar per metric.
func renderChart(w io.Writer, set ComparisonSet) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Performance Benchmark Comparison",
			Subtitle: "Generated: " + generatedAt(),
		}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true}),
	)

	names := metricNames(set)
	current := make([]opts.BarData, 0, len(names))
	baseline := make([]opts.BarData, 0, len(names))

	for _, name := range names {
		current = append(current, opts.BarData{Value: set[name].Current})
		baseline = append(baseline, opts.BarData{Value: set[name].Baseline})
	}

	bar.SetXAxis(names)
	bar.AddSeries("current", current)
	bar.AddSeries("baseline", baseline)

	return bar.Render(w)
}
