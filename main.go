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

	"valley-breezes/app"
	"valley-breezes/config"
	_ "valley-breezes/docs"
	"valley-breezes/libs"

	"github.com/gin-gonic/gin"
)

// @title Valley Breezes Storefront API
// @version 1.0
// @description Catalog, cart, fragrance quiz and currency endpoints for the Valley Breezes storefront.
// @host localhost:5000
// @BasePath /
func main() {
	cfg := config.LoadConfig()
	log := libs.NewLogger(libs.LoggerOptions{
		Service:   "valley-breezes",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: cfg.AppEnv != "production",
	})

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer application.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("addr", srv.Addr))
		log.Info("swagger ui", slog.String("url", "http://localhost:"+cfg.Port+"/swagger/index.html"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", slog.Any("err", err))
	}
	log.Info("bye")
}
