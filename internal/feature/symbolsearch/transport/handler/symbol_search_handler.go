// Package handler はsymbolsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"stock_market/internal/feature/symbolsearch/domain/entity"
	"stock_market/internal/feature/symbolsearch/transport/http/dto"
	"stock_market/internal/shared/apierr"

	"github.com/gin-gonic/gin"
)

// resourceName はエラーメッセージに使う取得対象の名前です。
const resourceName = "symbol search data"

// SymbolSearchUsecase は銘柄検索のユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolSearchUsecase interface {
	Search(ctx context.Context, company string) (entity.MatchTable, error)
}

// SymbolSearchHandler は銘柄検索のHTTPリクエストを処理します。
type SymbolSearchHandler struct {
	uc SymbolSearchUsecase
}

// NewSymbolSearchHandler は新しい SymbolSearchHandler を作成します。
func NewSymbolSearchHandler(uc SymbolSearchUsecase) *SymbolSearchHandler {
	return &SymbolSearchHandler{uc: uc}
}

// Search は会社名から銘柄を検索するAPIです。
//
// エンドポイント例:
// GET /symbols/search?keywords=Tesla
//
// 入力が空の場合は400、外部APIの取得・解析に失敗した場合は502を返します。
// 原因の詳細はログにのみ出力し、レスポンスには利用者向けのメッセージだけを含めます。
func (h *SymbolSearchHandler) Search(c *gin.Context) {
	table, err := h.uc.Search(c.Request.Context(), c.Query("keywords"))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, apierr.ErrEmptyInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": apierr.UserMessage(err, resourceName)})
		return
	}

	out := dto.SearchResponse{
		Columns: table.Columns,
		Matches: make([]map[string]any, 0, table.Len()),
	}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	for _, m := range table.Rows {
		out.Matches = append(out.Matches, m)
	}
	c.JSON(http.StatusOK, out)
}
