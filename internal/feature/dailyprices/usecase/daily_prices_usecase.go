// Package usecase は日足データ取得とチャート生成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"stock_market/internal/feature/dailyprices/chart"
	"stock_market/internal/feature/dailyprices/domain/entity"
	"stock_market/internal/shared/apierr"
)

// DailySeriesRepository は日足データを提供する外部APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DailySeriesRepository interface {
	DailySeries(ctx context.Context, symbol string) (entity.DailySeries, error)
}

// DailyPrices は表示用の日足データとチャート系列の組です。
// チャートの生成に失敗しても表は表示できるよう、ChartErr を別に保持します。
type DailyPrices struct {
	Series   entity.DailySeries
	Chart    entity.ChartSeries
	ChartErr error
}

// DailyPricesUsecase は日足データ取得のユースケースを定義します。
type DailyPricesUsecase struct {
	repo DailySeriesRepository
}

// NewDailyPricesUsecase はDailyPricesUsecaseの新しいインスタンスを生成します。
func NewDailyPricesUsecase(repo DailySeriesRepository) *DailyPricesUsecase {
	return &DailyPricesUsecase{repo: repo}
}

// GetDailyPrices は銘柄コードの日足を取得し、ローソク足チャート用の系列に射影します。
// 銘柄コードの書式は検証せず、前後の空白を除いてそのまま外部APIに渡します。
func (u *DailyPricesUsecase) GetDailyPrices(ctx context.Context, symbol string) (DailyPrices, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return DailyPrices{}, apierr.ErrEmptyInput
	}

	series, err := u.repo.DailySeries(ctx, symbol)
	if err != nil {
		return DailyPrices{}, err
	}

	cs, err := chart.Project(series)
	return DailyPrices{Series: series, Chart: cs, ChartErr: err}, nil
}
