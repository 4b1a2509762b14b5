package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"valley-breezes/app"
	"valley-breezes/config"
	"valley-breezes/libs"

	"github.com/gin-gonic/gin"
)

var (
	router  http.Handler
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		log := libs.NewLogger(libs.LoggerOptions{Service: "valley-breezes", Env: cfg.AppEnv, Level: cfg.LogLevel})

		a, err := app.New(context.Background(), cfg, log)
		if err != nil {
			log.Error("startup failed", slog.Any("err", err))
			initErr = err
			return
		}
		router = a.Router
	})
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, `{"success":false,"message":"Service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
