package app

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"valley-breezes/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:          "test",
		ProductsFile:    filepath.Join("..", "data", "all-products.json"),
		DefaultCurrency: "AED",
	}
}

func TestNewServesSeedCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))

	a, err := New(context.Background(), testConfig(), log)
	require.NoError(t, err)
	defer a.Close()

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, logs.String(), `"msg":"catalog loaded"`)
	assert.Contains(t, logs.String(), `"path":"/api/products/1"`)
}

func TestNewRejectsBadConfig(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	cfg := testConfig()
	cfg.ProductsFile = filepath.Join(t.TempDir(), "missing.json")
	_, err := New(context.Background(), cfg, log)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.DefaultCurrency = "JPY"
	_, err = New(context.Background(), cfg, log)
	assert.Error(t, err)
}
