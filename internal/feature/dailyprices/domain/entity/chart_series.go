package entity

import "time"

// ChartSeries is the column-oriented projection of a DailySeries used to draw a candlestick chart.
// All slices have the same length and index i of each refers to Dates[i].
type ChartSeries struct {
	Dates []time.Time
	Open  []float64
	High  []float64
	Low   []float64
	Close []float64
}

// Len returns the length of the shared date axis.
func (c ChartSeries) Len() int {
	return len(c.Dates)
}
