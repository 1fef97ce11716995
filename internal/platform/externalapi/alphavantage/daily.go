package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"time"

	"stock_market/internal/feature/dailyprices/domain/entity"
	"stock_market/internal/shared/apierr"
)

// dateLayouts は日付キーとして受け付けるフォーマットです。
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05"}

// DailySeries は銘柄の日足（始値・高値・安値・終値）を取得します。
//
// レスポンスは日付ごとにOHLCがネストした形なので、行=日付に転置します。
// 1行でも日付や数値のパースに失敗した場合は部分的な結果を返さず、
// 全体を apierr.ErrSchemaMismatch として扱います。
// 行の順序はレスポンスの順序のままで、並べ替えは行いません。
func (r *Repository) DailySeries(ctx context.Context, symbol string) (entity.DailySeries, error) {
	slog.Info("fetching daily stock data", "symbol", symbol)

	series, err := r.dailySeries(ctx, symbol)
	if err != nil {
		slog.Error("daily stock data fetch failed", "symbol", symbol, "error", err)
		return entity.DailySeries{}, fmt.Errorf("daily series %q: %w", symbol, err)
	}
	return series, nil
}

func (r *Repository) dailySeries(ctx context.Context, symbol string) (entity.DailySeries, error) {
	q := url.Values{}
	q.Set("function", functionTimeSeriesDaily)
	q.Set("symbol", symbol)
	q.Set("outputsize", outputSizeCompact)
	q.Set("datatype", dataTypeJSON)

	top, err := r.fetch(ctx, q)
	if err != nil {
		return entity.DailySeries{}, err
	}

	raw, ok := top.lookup(fieldTimeSeriesDaily)
	if !ok {
		return entity.DailySeries{}, missingField(top, fieldTimeSeriesDaily)
	}
	rows, err := decodeObject(raw)
	if err != nil {
		return entity.DailySeries{}, fmt.Errorf("%w: %s: %w", apierr.ErrSchemaMismatch, fieldTimeSeriesDaily, err)
	}

	bars := make([]entity.DailyBar, 0, len(rows))
	for _, row := range rows {
		bar, err := parseBar(row.Key, row.Value)
		if err != nil {
			return entity.DailySeries{}, fmt.Errorf("%w: %s", apierr.ErrSchemaMismatch, err)
		}
		bars = append(bars, bar)
	}
	return entity.DailySeries{Symbol: symbol, Bars: bars}, nil
}

// parseBar は1日分のOHLCレコードをパースします。
func parseBar(date string, raw json.RawMessage) (entity.DailyBar, error) {
	// タイムスタンプをパース
	tm, err := parseDate(date)
	if err != nil {
		return entity.DailyBar{}, err
	}

	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
		return entity.DailyBar{}, fmt.Errorf("row %s: %v", date, errNotObject)
	}

	bar := entity.DailyBar{Date: tm}
	targets := []struct {
		field string
		dst   *float64
	}{
		{fieldOpen, &bar.Open},
		{fieldHigh, &bar.High},
		{fieldLow, &bar.Low},
		{fieldClose, &bar.Close},
	}
	for _, t := range targets {
		v, ok := rec[t.field]
		if !ok {
			return entity.DailyBar{}, fmt.Errorf("row %s: field %q not found", date, t.field)
		}
		f, err := parsePrice(v)
		if err != nil {
			return entity.DailyBar{}, fmt.Errorf("row %s: parse %s: %v", date, t.field, err)
		}
		*t.dst = f
	}
	return bar, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if tm, err := time.Parse(layout, s); err == nil {
			return tm, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q", s)
}

// parsePrice は文字列（またはJSON数値）の価格を有限の float64 に変換します。
func parsePrice(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case string:
		var err error
		f, err = strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", x)
		}
	case float64:
		f = x
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not finite", f)
	}
	return f, nil
}
