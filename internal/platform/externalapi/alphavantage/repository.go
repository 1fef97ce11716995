// Package alphavantage はAlpha Vantage形式のJSONレスポンスを型付きのドメインモデルに変換するアダプターを提供します。
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	dailyusecase "stock_market/internal/feature/dailyprices/usecase"
	searchusecase "stock_market/internal/feature/symbolsearch/usecase"
	"stock_market/internal/shared/apierr"
)

const (
	functionSymbolSearch    = "SYMBOL_SEARCH"
	functionTimeSeriesDaily = "TIME_SERIES_DAILY"

	fieldBestMatches     = "bestMatches"
	fieldTimeSeriesDaily = "Time Series (Daily)"

	fieldOpen  = "1. open"
	fieldHigh  = "2. high"
	fieldLow   = "3. low"
	fieldClose = "4. close"

	outputSizeCompact = "compact"
	dataTypeJSON      = "json"
)

// providerMessageFields はAlpha VantageがHTTP 200のままエラーを返すときに使うフィールドです。
var providerMessageFields = []string{"Error Message", "Note", "Information"}

// Fetcher はクエリパラメータを受け取り、デコード済みのJSONを返すHTTPクライアントです。
//
//go:generate mockgen -package=alphavantage_test -destination=mock_fetcher_test.go -source=repository.go Fetcher
type Fetcher interface {
	Fetch(ctx context.Context, params url.Values) (json.RawMessage, error)
}

// Repository は銘柄検索と日足取得の2つのアダプターを実装します。
type Repository struct {
	fetcher Fetcher
}

// Repositoryが各ユースケースのリポジトリを実装していることをコンパイル時に検証します。
var (
	_ searchusecase.SymbolSearchRepository = (*Repository)(nil)
	_ dailyusecase.DailySeriesRepository   = (*Repository)(nil)
)

// NewRepository は指定されたFetcherでRepositoryの新しいインスタンスを生成します。
func NewRepository(fetcher Fetcher) *Repository {
	return &Repository{fetcher: fetcher}
}

// fetch はFetcherを呼び出し、トップレベルのJSONオブジェクトを返します。
// 取得の失敗は apierr.ErrUpstream、オブジェクトでない場合は apierr.ErrSchemaMismatch になります。
func (r *Repository) fetch(ctx context.Context, q url.Values) (object, error) {
	raw, err := r.fetcher.Fetch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apierr.ErrUpstream, err)
	}
	top, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: response: %w", apierr.ErrSchemaMismatch, err)
	}
	return top, nil
}

// missingField は必須フィールドが無いときのエラーを組み立てます。
// プロバイダーからのメッセージがあればエラーに含めます。
func missingField(top object, name string) error {
	for _, f := range providerMessageFields {
		raw, ok := top.lookup(f)
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			return fmt.Errorf("%w: field %q not found: provider says %q", apierr.ErrSchemaMismatch, name, msg)
		}
	}
	return fmt.Errorf("%w: field %q not found", apierr.ErrSchemaMismatch, name)
}
