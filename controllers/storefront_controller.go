package controllers

import (
	"net/http"

	"valley-breezes/models"
	"valley-breezes/services"
	"valley-breezes/utils"

	"github.com/gin-gonic/gin"
)

type StorefrontController struct {
	Currency *services.CurrencyService
}

// GetCurrencies godoc
// @Summary Supported currencies
// @Description Codes, symbols and static rates against AED.
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/currencies [get]
func (ctrl *StorefrontController) GetCurrencies(c *gin.Context) {
	respondOK(c, http.StatusOK, "Currencies retrieved", ctrl.Currency.List())
}

// GetBrands godoc
// @Summary Brand filter options
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/brands [get]
func (ctrl *StorefrontController) GetBrands(c *gin.Context) {
	respondOK(c, http.StatusOK, "Brands retrieved", models.Brands)
}

// NewSession godoc
// @Summary New guest session
// @Description Issues a session identifier for a client that has none.
// @Tags Storefront
// @Produce json
// @Success 201 {object} models.Response
// @Router /api/session [post]
func (ctrl *StorefrontController) NewSession(c *gin.Context) {
	respondOK(c, http.StatusCreated, "Session created", models.SessionResponse{SessionID: utils.NewGuestSessionID()})
}
