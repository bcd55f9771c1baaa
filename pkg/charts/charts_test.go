package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mtgsim/manasim/pkg/simulation"
)

func TestRenderManaGivenCMCChartWritesFile(t *testing.T) {
	out := simulation.Output{
		CardObservations: []simulation.CardRow{
			{Name: "lightning bolt", CMC: 1},
			{Name: "counterspell", CMC: 2},
		},
	}
	out.CardObservations[0].Observations.Add(true, true, true, true)
	out.CardObservations[1].Observations.Add(true, true, false, false)

	path := filepath.Join(t.TempDir(), "chart.html")
	if err := RenderManaGivenCMCChart(out, DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderManaGivenCMCChart: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected chart file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("expected non-empty chart file")
	}
}

func TestRenderCurveComparisonChartWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare.html")
	labels := []string{"bolt", "counterspell"}
	series := map[string][]float64{
		"down_to_5": {0.9, 0.7},
		"down_to_7": {0.95, 0.8},
	}
	if err := RenderCurveComparisonChart(labels, series, DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderCurveComparisonChart: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected chart file to exist: %v", err)
	}
}
