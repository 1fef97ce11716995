// Package config はアプリケーションの設定をYAMLファイル、.env、環境変数から読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"stock_market/internal/platform/externalapi/rapidapi"
)

const (
	defaultServerAddr = ":8080"
	defaultLogDir     = "logs"
)

// Config holds all application configuration.
type Config struct {
	RapidAPI struct {
		URL     string        `yaml:"url"`
		Key     string        `yaml:"key"`
		Host    string        `yaml:"host"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"rapidapi"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Log struct {
		Dir   string `yaml:"dir"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load は設定を次の優先順位で読み込みます（後のものが優先）。
//
//  1. デフォルト値
//  2. YAMLファイル（path、存在しなければ無視）
//  3. .envファイル（envFile、存在しなければ無視）
//  4. 環境変数
func Load(path, envFile string) (*Config, error) {
	cfg := &Config{}
	cfg.RapidAPI.Timeout = rapidapi.DefaultTimeout
	cfg.Server.Addr = defaultServerAddr
	cfg.Log.Dir = defaultLogDir
	cfg.Log.Level = "info"

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
			slog.Info(".env not found; using system environment variables", "path", envFile)
		default:
			return nil, fmt.Errorf("read env file: %w", err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	// Environment variable overrides
	rc, err := rapidapi.LoadConfig(cfg.RapidAPIConfig(), lookup)
	if err != nil {
		return nil, err
	}
	cfg.RapidAPI.URL = rc.EndpointURL
	cfg.RapidAPI.Key = rc.APIKey
	cfg.RapidAPI.Host = rc.APIHost
	cfg.RapidAPI.Timeout = rc.Timeout
	if v, ok := lookup("SERVER_ADDR"); ok {
		cfg.Server.Addr = v
	}
	if v, ok := lookup("LOG_DIR"); ok {
		cfg.Log.Dir = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}

	return cfg, nil
}

// RapidAPIConfig はRapidAPIクライアント用の設定を返します。
func (c *Config) RapidAPIConfig() rapidapi.Config {
	return rapidapi.Config{
		EndpointURL: c.RapidAPI.URL,
		APIKey:      c.RapidAPI.Key,
		APIHost:     c.RapidAPI.Host,
		Timeout:     c.RapidAPI.Timeout,
	}
}

// Validate は起動に必須の設定が揃っているかを確認します。
func (c *Config) Validate() error {
	if err := c.RapidAPIConfig().Validate(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel はログレベルの文字列を slog.Level に変換します。
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
