package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market_proxy/internal/app/di"
	"market_proxy/internal/app/router"
	"market_proxy/internal/config"
	"market_proxy/internal/platform/logger"
)

func main() {
	cfg := config.Load()

	// ロガーを初期化
	slog.SetDefault(logger.New(cfg.LogLevel))

	// ハンドラーとルータを構築
	marketH := di.NewMarketHandler(cfg)
	r := router.NewRouter(marketH, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("market proxy started",
			"port", cfg.Port,
			"upstream_hosts", cfg.UpstreamHosts,
			"upstream_timeout", cfg.UpstreamTimeout.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// 処理中のリクエストを待ってから停止
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
