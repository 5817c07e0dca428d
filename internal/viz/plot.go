package viz

import (
	"github.com/guptarohit/asciigraph"
)

// Series extracts one state column from a stored trajectory. Rows too short
// for the column contribute zero.
func Series(states [][]float64, col int) []float64 {
	data := make([]float64, len(states))
	for i := range states {
		if col < len(states[i]) {
			data[i] = states[i][col]
		}
	}
	return data
}

// RenderSeries plots one series as an ASCII chart with a caption.
func RenderSeries(data []float64, caption string, width, height int) string {
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
