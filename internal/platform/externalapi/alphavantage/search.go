package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"stock_market/internal/feature/symbolsearch/domain/entity"
	"stock_market/internal/shared/apierr"
)

// SearchSymbols は会社名などのキーワードで銘柄を検索し、bestMatches を表形式で返します。
// フィールド名はレスポンスのまま保持し、名前の変更や絞り込みは行いません。
func (r *Repository) SearchSymbols(ctx context.Context, keywords string) (entity.MatchTable, error) {
	slog.Info("searching for symbol", "keywords", keywords)

	table, err := r.searchSymbols(ctx, keywords)
	if err != nil {
		slog.Error("symbol search failed", "keywords", keywords, "error", err)
		return entity.MatchTable{}, fmt.Errorf("symbol search %q: %w", keywords, err)
	}
	return table, nil
}

func (r *Repository) searchSymbols(ctx context.Context, keywords string) (entity.MatchTable, error) {
	q := url.Values{}
	q.Set("datatype", dataTypeJSON)
	q.Set("keywords", keywords)
	q.Set("function", functionSymbolSearch)

	top, err := r.fetch(ctx, q)
	if err != nil {
		return entity.MatchTable{}, err
	}

	raw, ok := top.lookup(fieldBestMatches)
	if !ok {
		return entity.MatchTable{}, missingField(top, fieldBestMatches)
	}
	items, err := decodeArray(raw)
	if err != nil {
		return entity.MatchTable{}, fmt.Errorf("%w: %s: %w", apierr.ErrSchemaMismatch, fieldBestMatches, err)
	}

	table := entity.MatchTable{
		Columns: []string{},
		Rows:    make([]entity.Match, 0, len(items)),
	}
	seen := map[string]struct{}{}
	for i, item := range items {
		fields, err := decodeObject(item)
		if err != nil {
			return entity.MatchTable{}, fmt.Errorf("%w: %s[%d]: %w", apierr.ErrSchemaMismatch, fieldBestMatches, i, err)
		}

		match := make(entity.Match, len(fields))
		for _, f := range fields {
			var v any
			if err := json.Unmarshal(f.Value, &v); err != nil {
				return entity.MatchTable{}, fmt.Errorf("%w: %s[%d].%s: %w", apierr.ErrSchemaMismatch, fieldBestMatches, i, f.Key, err)
			}
			match[f.Key] = v

			if _, ok := seen[f.Key]; !ok {
				seen[f.Key] = struct{}{}
				table.Columns = append(table.Columns, f.Key)
			}
		}
		table.Rows = append(table.Rows, match)
	}
	return table, nil
}
