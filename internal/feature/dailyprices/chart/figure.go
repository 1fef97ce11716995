package chart

import (
	"time"

	"stock_market/internal/feature/dailyprices/domain/entity"
)

const (
	// FigureWidth と FigureHeight はチャートの描画サイズ（px）です。
	FigureWidth  = 800
	FigureHeight = 600

	traceCandlestick = "candlestick"
)

// Figure はPlotly互換のチャート記述です。
// そのまま Plotly.newPlot(el, fig.data, fig.layout) に渡せます。
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace は1本のローソク足トレースです。
type Trace struct {
	Type  string    `json:"type"`
	X     []string  `json:"x"`
	Open  []float64 `json:"open"`
	High  []float64 `json:"high"`
	Low   []float64 `json:"low"`
	Close []float64 `json:"close"`
}

// Layout はチャートのレイアウト設定です。
type Layout struct {
	Title  string `json:"title,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewCandlestickFigure はChartSeriesからローソク足チャートの記述を生成します。
func NewCandlestickFigure(title string, cs entity.ChartSeries) Figure {
	x := make([]string, 0, cs.Len())
	for _, d := range cs.Dates {
		x = append(x, d.Format(time.DateOnly))
	}
	return Figure{
		Data: []Trace{{
			Type:  traceCandlestick,
			X:     x,
			Open:  cs.Open,
			High:  cs.High,
			Low:   cs.Low,
			Close: cs.Close,
		}},
		Layout: Layout{Title: title, Width: FigureWidth, Height: FigureHeight},
	}
}
