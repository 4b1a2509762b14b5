package controllers

import (
	"net/http"

	"valley-breezes/models"
	"valley-breezes/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Catalog *services.CatalogService
}

// GetAllProducts godoc
// @Summary List products
// @Description Raw product records. A non-empty search wins over brand, brand wins over category.
// @Tags Products
// @Produce json
// @Param category query string false "Category" Enums(all, women, men, unisex)
// @Param brand query string false "Brand id"
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} models.Response
// @Failure 503 {object} models.ErrorResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	f := models.FilterState{
		Category: models.Category(c.DefaultQuery("category", string(models.CategoryAll))),
		Brand:    c.DefaultQuery("brand", models.BrandAll),
		Search:   c.Query("search"),
	}

	products, err := ctrl.Catalog.ListProducts(c.Request.Context(), f)
	if err != nil {
		respondError(c, err, []models.Product{})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	respondOK(c, http.StatusOK, "Products retrieved", products)
}

// GetProductByID godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	p, err := ctrl.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Product retrieved", p)
}

// GetProductVariants godoc
// @Summary List product variants
// @Description Every record sharing the product's name, smallest volume first.
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id}/variants [get]
func (ctrl *ProductController) GetProductVariants(c *gin.Context) {
	variants, err := ctrl.Catalog.Variants(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Variants retrieved", variants)
}
