// Package logger はアプリケーション全体のslogの出力先を設定します。
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName はログディレクトリ内に作成するログファイル名です。
const FileName = "app.log"

// Setup はログをコンソールと <dir>/app.log の両方に出力するよう slog のデフォルトロガーを設定します。
// dir が空の場合はコンソールのみに出力します。
// 戻り値の io.Closer は終了時に閉じてください。
func Setup(dir string, level slog.Level) (io.Closer, error) {
	if dir == "" {
		slog.SetDefault(New(os.Stderr, level))
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(New(io.MultiWriter(f, os.Stderr), level))
	return f, nil
}

// New は指定した出力先に書き込むテキスト形式のロガーを生成します。
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
