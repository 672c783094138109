// Package viz renders element time series in the terminal.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Plot renders one element column as an ascii graph with a caption.
func Plot(name string, times, values []float64, width, height int) string {
	if len(values) == 0 {
		return "no data"
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s over %.0f min", name, times[len(times)-1]-times[0])),
	)
	return graph
}
