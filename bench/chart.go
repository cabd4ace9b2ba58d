package bench

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderChart draws the aggregate's mean pairwise correlations as a
// bar chart PNG, one bar per semantics pair.
func (a *Aggregate) RenderChart(path string) error {
	if len(a.Mean) == 0 {
		return fmt.Errorf("%w: nothing to chart", ErrInput)
	}

	bars := make([]chart.Value, 0, len(a.Mean))
	for i, row := range a.Semantics {
		for _, col := range a.Semantics[i+1:] {
			v, ok := a.Mean[makePair(row, col)]
			if !ok {
				continue
			}
			bars = append(bars, chart.Value{
				Label: row + "/" + col,
				Value: v,
			})
		}
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Mean %s correlation (%s)", a.Metric, a.Stratum),
		Height:   512,
		BarWidth: 36,
		Bars:     bars,
		// correlations lie in [-1, 1]; a fixed range also keeps a
		// single bar (zero data spread) renderable
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: -1, Max: 1}},
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
