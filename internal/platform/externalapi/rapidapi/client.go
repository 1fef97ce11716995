package rapidapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"stock_market/internal/shared/apierr"
)

const (
	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"
)

// Client はRapidAPIのエンドポイントに対してGETリクエストを発行します。
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Fetch はクエリパラメータ付きのGETリクエストを1回だけ送信し、
// デコード済みのJSONをそのまま返します。
//
// 接続エラーや4xx/5xxは apierr.ErrTransport、JSONとして不正なボディは
// apierr.ErrDecode でラップして返します。リトライは行いません。
func (c *Client) Fetch(ctx context.Context, params url.Values) (json.RawMessage, error) {
	function := params.Get("function")
	slog.Info("fetching", "function", function)

	req, err := c.newRequest(ctx, params)
	if err != nil {
		slog.Error("failed to build request", "function", function, "error", err)
		return nil, fmt.Errorf("%w: %w", apierr.ErrTransport, err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		slog.Error("request failed", "function", function, "error", err)
		return nil, fmt.Errorf("%w: %w", apierr.ErrTransport, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		slog.Error("request failed", "function", function, "status", res.StatusCode)
		return nil, fmt.Errorf("%w: rapidapi http %d", apierr.ErrTransport, res.StatusCode)
	}

	body, err := decodeBody(res.Body)
	if err != nil {
		slog.Error("failed to decode response", "function", function, "error", err)
		return nil, fmt.Errorf("%w: %w", apierr.ErrDecode, err)
	}
	return body, nil
}

// decodeBody はボディ全体がちょうど1つのJSON値であることを確認して返します。
// 先頭の値の後ろに続くデータ（HTMLの断片など）もエラーとします。
func decodeBody(r io.Reader) (json.RawMessage, error) {
	dec := json.NewDecoder(r)
	var body json.RawMessage
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return body, nil
}

// newRequest はURLと認証ヘッダーを組み立てたリクエストを生成します。
func (c *Client) newRequest(ctx context.Context, params url.Values) (*http.Request, error) {
	u, err := url.Parse(c.cfg.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint url: %w", err)
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerAPIKey, c.cfg.APIKey)
	req.Header.Set(headerAPIHost, c.cfg.APIHost)
	return req, nil
}
