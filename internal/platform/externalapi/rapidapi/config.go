// Package rapidapi はRapidAPI経由で公開されている株価APIへのHTTPクライアントを提供します。
package rapidapi

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// DefaultTimeout はリクエスト全体のデフォルトタイムアウトです。
const DefaultTimeout = 30 * time.Second

// Config はRapidAPIの接続先と認証情報を保持します。
// 起動時に一度だけ生成し、以降は変更しません。
type Config struct {
	EndpointURL string        // 呼び出し先のURL（例: "https://alpha-vantage.p.rapidapi.com/query"）
	APIKey      string        // x-rapidapi-key ヘッダーに設定するキー
	APIHost     string        // x-rapidapi-host ヘッダーに設定するホスト名
	Timeout     time.Duration // HTTPリクエストタイムアウト
}

// 設定を上書きする環境変数名。
const (
	EnvURL     = "RAPIDAPI_URL"
	EnvKey     = "RAPIDAPI_KEY"
	EnvHost    = "RAPIDAPI_HOST"
	EnvTimeout = "HTTP_TIMEOUT"
)

// LoadConfig は base を起点に、lookup で見つかった値で上書きした設定を返します。
// lookup が nil の場合は os.LookupEnv を使います。空文字の値は未設定として扱います。
func LoadConfig(base Config, lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	cfg := base
	if v, ok := get(EnvURL); ok {
		cfg.EndpointURL = v
	}
	if v, ok := get(EnvKey); ok {
		cfg.APIKey = v
	}
	if v, ok := get(EnvHost); ok {
		cfg.APIHost = v
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// Validate は必須の値がすべて設定されているかを確認します。
func (c Config) Validate() error {
	var errs []error
	if c.EndpointURL == "" {
		errs = append(errs, errors.New(EnvURL + " is not set"))
	}
	if c.APIKey == "" {
		errs = append(errs, errors.New(EnvKey + " is not set"))
	}
	if c.APIHost == "" {
		errs = append(errs, errors.New(EnvHost + " is not set"))
	}
	return errors.Join(errs...)
}
