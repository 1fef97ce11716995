// Package apierr は外部データAPI呼び出しとその整形処理で発生するエラーの分類を定義します。
package apierr

import "errors"

// Fetcher レベルのエラー。
var (
	// ErrTransport は接続エラー、タイムアウト、または成功以外のHTTPステータスを表します。
	ErrTransport = errors.New("transport failure")

	// ErrDecode はレスポンスボディが有効なJSONでないことを表します。
	ErrDecode = errors.New("decode failure")
)

// アダプター レベルのエラー。
var (
	// ErrUpstream は外部APIからデータを取得できなかったことを表します。
	// 原因となった ErrTransport / ErrDecode はエラーチェーンに残ります。
	ErrUpstream = errors.New("upstream failure")

	// ErrSchemaMismatch はレスポンスの形がアダプターの想定と異なることを表します。
	// フィールド欠落、型違い、日付や数値のパース失敗を含みます。
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// チャート生成のエラー。
var (
	// ErrEmptySeries は行を1件も含まない時系列が渡されたことを表します。
	ErrEmptySeries = errors.New("empty series")

	// ErrMalformedInput は時系列の不変条件（有効な日付、有限な数値）が崩れていることを表します。
	ErrMalformedInput = errors.New("malformed input")
)

// ErrEmptyInput は会社名や銘柄コードが空であることを表します。
var ErrEmptyInput = errors.New("empty input")
