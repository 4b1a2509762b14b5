package app

import (
	"context"
	"fmt"
	"log/slog"

	"valley-breezes/config"
	"valley-breezes/controllers"
	"valley-breezes/middleware"
	"valley-breezes/models"
	"valley-breezes/repositories"
	"valley-breezes/routes"
	"valley-breezes/services"

	"github.com/gin-gonic/gin"
)

// App is the wired storefront: stores, services and the gin router.
type App struct {
	Router *gin.Engine

	closers []func()
}

// New loads the catalog once and wires every component. Postgres and redis
// are used only when configured.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{}

	products, err := a.loadCatalog(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	results, err := a.quizResultStore(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	productRepo := repositories.NewMemoryProductRepository(products)
	log.Info("catalog loaded", slog.Int("products", productRepo.Len()))
	cartRepo := repositories.NewMemoryCartRepository()

	currencySvc := services.NewCurrencyService()
	if _, err := currencySvc.Normalize(cfg.DefaultCurrency); err != nil {
		a.Close()
		return nil, fmt.Errorf("DEFAULT_CURRENCY: %w", err)
	}
	catalogSvc := services.NewCatalogService(productRepo, currencySvc, log)
	cartSvc := services.NewCartService(cartRepo, productRepo, currencySvc, log)
	quizSvc := services.NewQuizService(results, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	routes.SetupRoutes(router, routes.Controllers{
		Product:    &controllers.ProductController{Catalog: catalogSvc},
		Catalog:    &controllers.CatalogController{Catalog: catalogSvc, Quiz: quizSvc, DefaultCurrency: cfg.DefaultCurrency},
		Cart:       &controllers.CartController{Cart: cartSvc, DefaultCurrency: cfg.DefaultCurrency},
		Quiz:       &controllers.QuizController{Quiz: quizSvc},
		Storefront: &controllers.StorefrontController{Currency: currencySvc},
	})

	a.Router = router
	return a, nil
}

func (a *App) loadCatalog(ctx context.Context, cfg *config.Config, log *slog.Logger) ([]models.Product, error) {
	if cfg.CatalogDatabaseURL == "" {
		products, err := repositories.LoadProductsFromFile(cfg.ProductsFile)
		if err != nil {
			return nil, fmt.Errorf("load catalog from %s: %w", cfg.ProductsFile, err)
		}
		return products, nil
	}

	pool, err := config.ConnectCatalogDB(ctx, cfg.CatalogDatabaseURL)
	if err != nil {
		return nil, err
	}
	// The store is in memory once seeded; the pool is not kept.
	defer pool.Close()

	log.Info("seeding catalog from postgres")
	products, err := repositories.LoadProductsFromPostgres(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("load catalog from postgres: %w", err)
	}
	return products, nil
}

func (a *App) quizResultStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (repositories.QuizResultStore, error) {
	if !cfg.RedisEnabled() {
		return repositories.NewMemoryQuizResultStore(), nil
	}

	client, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() {
		if err := client.Close(); err != nil {
			log.Warn("redis close failed", slog.Any("err", err))
		}
	})
	log.Info("quiz results stored in redis", slog.Duration("ttl", cfg.QuizResultTTL))
	return repositories.NewRedisQuizResultStore(client, cfg.QuizResultTTL), nil
}

// Close releases external connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
