package main

import (
	"flag"
	"log"
	"log/slog"

	"stock_market/internal/app/config"
	"stock_market/internal/app/di"
	"stock_market/internal/app/router"
	dailyhandler "stock_market/internal/feature/dailyprices/transport/handler"
	searchhandler "stock_market/internal/feature/symbolsearch/transport/handler"
	"stock_market/internal/platform/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	envFile := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	// 設定（認証情報が欠けている場合は起動しない）
	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// ログ
	level, _ := cfg.LogLevel()
	closer, err := logger.Setup(cfg.Log.Dir, level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Println("[ERROR] Failed to close log file:", err)
		}
	}()

	// Usecase
	rc := cfg.RapidAPIConfig()
	ucs := di.NewUsecases(rc)

	// Handler
	searchH := searchhandler.NewSymbolSearchHandler(ucs.Search)
	dailyH := dailyhandler.NewDailyPricesHandler(ucs.Daily)

	// ルータ生成
	r := router.NewRouter(rc.APIHost, searchH, dailyH)

	slog.Info("starting server", "addr", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		slog.Error("server stopped", "error", err)
	}
}
