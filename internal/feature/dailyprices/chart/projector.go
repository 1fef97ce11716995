// Package chart はDailySeriesをローソク足チャート用の系列に射影します。
package chart

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"stock_market/internal/feature/dailyprices/domain/entity"
	"stock_market/internal/shared/apierr"
)

// Project は日足の系列を、日付軸を共有する4本の数値列（始値・高値・安値・終値）に変換します。
// I/Oを伴わない純粋な変換で、行の順序は入力のまま保持します。
//
// 行が0件の場合は apierr.ErrEmptySeries、日付がゼロ値または値が有限でない行がある場合は
// apierr.ErrMalformedInput を返します。
func Project(series entity.DailySeries) (entity.ChartSeries, error) {
	slog.Info("generating chart", "symbol", series.Symbol, "rows", series.Len())

	out, err := project(series)
	if err != nil {
		slog.Error("failed to generate chart", "symbol", series.Symbol, "error", err)
		return entity.ChartSeries{}, err
	}
	return out, nil
}

func project(series entity.DailySeries) (entity.ChartSeries, error) {
	n := series.Len()
	if n == 0 {
		return entity.ChartSeries{}, apierr.ErrEmptySeries
	}

	out := entity.ChartSeries{
		Dates: make([]time.Time, 0, n),
		Open:  make([]float64, 0, n),
		High:  make([]float64, 0, n),
		Low:   make([]float64, 0, n),
		Close: make([]float64, 0, n),
	}
	for i, b := range series.Bars {
		if b.Date.IsZero() {
			return entity.ChartSeries{}, fmt.Errorf("%w: row %d has no date", apierr.ErrMalformedInput, i)
		}
		for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return entity.ChartSeries{}, fmt.Errorf("%w: row %s has non-finite value %v",
					apierr.ErrMalformedInput, b.Date.Format(time.DateOnly), v)
			}
		}
		out.Dates = append(out.Dates, b.Date)
		out.Open = append(out.Open, b.Open)
		out.High = append(out.High, b.High)
		out.Low = append(out.Low, b.Low)
		out.Close = append(out.Close, b.Close)
	}
	return out, nil
}
