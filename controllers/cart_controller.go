package controllers

import (
	"net/http"

	"valley-breezes/models"
	"valley-breezes/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart            *services.CartService
	DefaultCurrency string
}

// GetCart godoc
// @Summary Get cart
// @Description Cart lines of a session with their products embedded.
// @Tags Cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response
// @Router /api/cart/{sessionId} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	items, err := ctrl.Cart.List(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Cart retrieved", items)
}

// GetSummary godoc
// @Summary Cart summary
// @Description Line totals with bulk pricing and the cart total in the requested currency.
// @Tags Cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param currency query string false "Display currency" Enums(AED, USD, SAR, BHD, OMR, GBP)
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/{sessionId}/summary [get]
func (ctrl *CartController) GetSummary(c *gin.Context) {
	summary, err := ctrl.Cart.Summary(c.Request.Context(), c.Param("sessionId"), c.DefaultQuery("currency", ctrl.DefaultCurrency))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Cart summary retrieved", summary)
}

// AddItem godoc
// @Summary Add to cart
// @Description Always creates a new line. Quantity defaults to 1.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Cart item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := ctrl.Cart.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusCreated, "Item added to cart", item)
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := ctrl.Cart.Update(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Cart item updated", item)
}

// RemoveItem godoc
// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	if err := ctrl.Cart.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Item removed from cart", nil)
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response
// @Router /api/cart/session/{sessionId} [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.Cart.Clear(c.Request.Context(), c.Param("sessionId")); err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, http.StatusOK, "Cart cleared", nil)
}
