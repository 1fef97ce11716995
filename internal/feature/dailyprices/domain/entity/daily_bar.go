// Package entity defines the domain models for the dailyprices feature.
package entity

import "time"

// DailyBar represents the OHLC prices of one trading day.
type DailyBar struct {
	Date  time.Time // Trading day (UTC midnight)
	Open  float64   // Opening price
	High  float64   // Highest price of the day
	Low   float64   // Lowest price of the day
	Close float64   // Closing price
}

// DailySeries is a date-indexed series of daily bars in the order the provider returned them.
// Non-trading days are simply absent.
type DailySeries struct {
	Symbol string
	Bars   []DailyBar
}

// Len returns the number of rows in the series.
func (s DailySeries) Len() int {
	return len(s.Bars)
}
