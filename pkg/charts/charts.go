// Package charts renders simulation.Output into interactive HTML charts,
// grounded on the teacher companion app's internal/charts package.
package charts

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mtgsim/manasim/pkg/simulation"
)

// ChartConfig holds rendering options shared by every chart in this
// package.
type ChartConfig struct {
	Title      string
	Subtitle   string
	Width      string
	Height     string
	Theme      string
	ShowLegend bool
	Colors     []string
}

// DefaultChartConfig mirrors the teacher's defaults.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:      "Mana Probability Curve",
		Width:      "900px",
		Height:     "500px",
		Theme:      "light",
		ShowLegend: true,
		Colors:     []string{"#5470C6", "#91CC75", "#FAC858", "#EE6666", "#73C0DE", "#3BA272", "#FC8452", "#9A60B4", "#EA7CCC"},
	}
}

// RenderManaGivenCMCChart plots, for every nonland card row in an Output,
// the observed P(mana|cmc) — the figure the Karsten tables publish — as a
// bar chart sorted by cmc then name (matching the row order the
// aggregator already produces).
func RenderManaGivenCMCChart(out simulation.Output, config ChartConfig, outputPath string) error {
	rows := make([]simulation.CardRow, len(out.CardObservations))
	copy(rows, out.CardObservations)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CMC != rows[j].CMC {
			return rows[i].CMC < rows[j].CMC
		}
		return rows[i].Name < rows[j].Name
	})

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(config.ShowLegend),
		}),
		charts.WithColorsOpts(opts.Colors{config.Colors[0]}),
	)

	labels := make([]string, len(rows))
	data := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = row.Name
		data[i] = opts.BarData{Value: row.ManaGivenCMCRate()}
	}

	bar.SetXAxis(labels).
		AddSeries("P(mana|cmc)", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// RenderCurveComparisonChart plots multiple deck runs' P(mana|cmc) curves
// against a shared set of card labels, useful for comparing mulligan
// policies or deck builds side by side.
func RenderCurveComparisonChart(labels []string, series map[string][]float64, config ChartConfig, outputPath string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(config.ShowLegend),
		}),
	)

	line.SetXAxis(labels)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		values := series[name]
		points := make([]opts.LineData, len(values))
		for j, v := range values {
			points[j] = opts.LineData{Value: v}
		}
		color := config.Colors[i%len(config.Colors)]
		line.AddSeries(name, points).
			SetSeriesOptions(
				charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
				charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
			)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
