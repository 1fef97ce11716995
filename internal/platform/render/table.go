// Package render は検索結果や日足データをターミナル向けの表として出力します。
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	dailyentity "stock_market/internal/feature/dailyprices/domain/entity"
	searchentity "stock_market/internal/feature/symbolsearch/domain/entity"
)

var printer = message.NewPrinter(language.English)

// Matches は銘柄検索結果を表として出力します。列はレスポンスに現れた順です。
func Matches(w io.Writer, t searchentity.MatchTable) {
	table := newTable(w)
	table.SetHeader(t.Columns)

	for _, m := range t.Rows {
		row := make([]string, 0, len(t.Columns))
		for _, col := range t.Columns {
			row = append(row, cell(m[col]))
		}
		table.Append(row)
	}
	table.Render()
}

// DailySeries は日足データを日付ごとの行として出力します。
// 価格は桁区切り付きで小数点以下4桁まで表示します。
func DailySeries(w io.Writer, s dailyentity.DailySeries) {
	table := newTable(w)
	table.SetHeader([]string{"Date", "Open", "High", "Low", "Close"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, b := range s.Bars {
		table.Append([]string{
			b.Date.Format(time.DateOnly),
			price(b.Open),
			price(b.High),
			price(b.Low),
			price(b.Close),
		})
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	// "1. symbol" のようなフィールド名をそのまま表示する
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func price(v float64) string {
	return printer.Sprintf("%.4f", v)
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
