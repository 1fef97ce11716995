package apierr

import (
	"errors"
	"fmt"
)

// ChartMessage はチャート生成に失敗したときの表示用メッセージです。
const ChartMessage = "Failed to generate chart. Please try again."

// UserMessage はエラーを利用者向けのメッセージに変換します。
// what には取得対象（例: "symbol search data"）を渡します。
// 詳細な原因はログにのみ出力し、ここでは返しません。
func UserMessage(err error, what string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "Please enter a value."
	case errors.Is(err, ErrSchemaMismatch):
		return fmt.Sprintf("Failed to parse the %s response. Please try again.", what)
	case errors.Is(err, ErrEmptySeries), errors.Is(err, ErrMalformedInput):
		return ChartMessage
	default:
		return fmt.Sprintf("Failed to fetch %s. Please try again.", what)
	}
}
