package controllers

import (
	"errors"
	"net/http"

	"valley-breezes/models"
	"valley-breezes/services"
	"valley-breezes/utils"

	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{Success: true, Message: message, Data: data})
}

// respondError maps service errors onto status codes. data, when given, is
// still sent so the client has something to render.
func respondError(c *gin.Context, err error, data interface{}) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
			Details: utils.ValidationDetails(err),
			Data:    data,
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Resource not found",
			Error:   err.Error(),
		})
	case errors.Is(err, services.ErrQuizComplete):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Quiz already complete",
			Error:   err.Error(),
			Data:    data,
		})
	case errors.Is(err, services.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "Failed to load products. Please try again later.",
			Error:   err.Error(),
			Data:    data,
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}

// respondBindError answers a failed request binding with field details.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
		Details: utils.ValidationDetails(err),
	})
}
