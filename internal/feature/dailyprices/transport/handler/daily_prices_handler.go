// Package handler はdailypricesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"stock_market/internal/feature/dailyprices/chart"
	"stock_market/internal/feature/dailyprices/transport/http/dto"
	"stock_market/internal/feature/dailyprices/usecase"
	"stock_market/internal/shared/apierr"

	"github.com/gin-gonic/gin"
)

const resourceName = "daily stock data"

// DailyPricesUsecase は日足データ取得のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DailyPricesUsecase interface {
	GetDailyPrices(ctx context.Context, symbol string) (usecase.DailyPrices, error)
}

// DailyPricesHandler は日足データのHTTPリクエストを処理します。
type DailyPricesHandler struct {
	uc DailyPricesUsecase
}

// NewDailyPricesHandler は指定されたusecaseでDailyPricesHandlerの新しいインスタンスを生成します。
func NewDailyPricesHandler(uc DailyPricesUsecase) *DailyPricesHandler {
	return &DailyPricesHandler{uc: uc}
}

// GetDailyPrices は銘柄コードを受け取り、日足の表とローソク足チャートをJSONで返します。
//
// エンドポイント例:
// GET /daily/IBM
func (h *DailyPricesHandler) GetDailyPrices(c *gin.Context) {
	res, err := h.uc.GetDailyPrices(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, apierr.ErrEmptyInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": apierr.UserMessage(err, resourceName)})
		return
	}

	// データをフォーマット
	out := dto.DailyPricesResponse{
		Symbol: res.Series.Symbol,
		Rows:   make([]dto.DailyBarResponse, 0, res.Series.Len()),
	}
	for _, b := range res.Series.Bars {
		out.Rows = append(out.Rows, dto.DailyBarResponse{
			Date:  b.Date.Format(time.DateOnly),
			Open:  b.Open,
			High:  b.High,
			Low:   b.Low,
			Close: b.Close,
		})
	}

	// チャートの失敗は表の表示を妨げない
	if res.ChartErr != nil {
		out.ChartError = apierr.ChartMessage
	} else {
		fig := chart.NewCandlestickFigure(res.Series.Symbol, res.Chart)
		out.Chart = &fig
	}

	c.JSON(http.StatusOK, out)
}
