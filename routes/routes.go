package routes

import (
	"net/http"

	"valley-breezes/controllers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Product    *controllers.ProductController
	Catalog    *controllers.CatalogController
	Cart       *controllers.CartController
	Quiz       *controllers.QuizController
	Storefront *controllers.StorefrontController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.GET("/products", ctrl.Product.GetAllProducts)
	api.GET("/products/:id", ctrl.Product.GetProductByID)
	api.GET("/products/:id/variants", ctrl.Product.GetProductVariants)
	api.GET("/catalog", ctrl.Catalog.Browse)

	cart := api.Group("/cart")
	{
		cart.GET("/:sessionId", ctrl.Cart.GetCart)
		cart.GET("/:sessionId/summary", ctrl.Cart.GetSummary)
		cart.POST("", ctrl.Cart.AddItem)
		cart.PATCH("/:id", ctrl.Cart.UpdateItem)
		cart.DELETE("/:id", ctrl.Cart.RemoveItem)
		cart.DELETE("/session/:sessionId", ctrl.Cart.ClearCart)
	}

	quiz := api.Group("/quiz")
	{
		quiz.GET("/questions", ctrl.Quiz.GetQuestions)
		quiz.POST("/resolve", ctrl.Quiz.Resolve)
		quiz.POST("/sessions", ctrl.Quiz.StartSession)
		quiz.GET("/sessions/:id", ctrl.Quiz.GetSession)
		quiz.PUT("/sessions/:id/answers", ctrl.Quiz.Answer)
		quiz.POST("/sessions/:id/advance", ctrl.Quiz.Advance)
		quiz.POST("/sessions/:id/back", ctrl.Quiz.Back)
		quiz.DELETE("/sessions/:id", ctrl.Quiz.Reset)
		quiz.GET("/results/:sessionId", ctrl.Quiz.GetResult)
	}

	api.GET("/currencies", ctrl.Storefront.GetCurrencies)
	api.GET("/brands", ctrl.Storefront.GetBrands)
	api.POST("/session", ctrl.Storefront.NewSession)
}
