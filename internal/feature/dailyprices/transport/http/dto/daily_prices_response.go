// Package dto はdailypricesフィーチャーのHTTPレスポンスDTOを定義します。
package dto

import "stock_market/internal/feature/dailyprices/chart"

// DailyBarResponse は日足1行分のレスポンスDTOです。
type DailyBarResponse struct {
	Date  string  `json:"date"`  // 日付
	Open  float64 `json:"open"`  // 始値
	High  float64 `json:"high"`  // 高値
	Low   float64 `json:"low"`   // 安値
	Close float64 `json:"close"` // 終値
}

// DailyPricesResponse は日足の表とローソク足チャートをまとめたレスポンスDTOです。
// チャートを生成できなかった場合は Chart の代わりに ChartError が設定されます。
type DailyPricesResponse struct {
	Symbol     string             `json:"symbol"`
	Rows       []DailyBarResponse `json:"rows"`
	Chart      *chart.Figure      `json:"chart,omitempty"`
	ChartError string             `json:"chart_error,omitempty"`
}
