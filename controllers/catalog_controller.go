package controllers

import (
	"net/http"
	"strings"

	"valley-breezes/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog         *services.CatalogService
	Quiz            *services.QuizService
	DefaultCurrency string
}

// Browse godoc
// @Summary Browse catalog
// @Description Filtered, variant-grouped and sorted catalog view with stock counts and display prices.
// @Tags Catalog
// @Produce json
// @Param category query string false "Category" Enums(all, women, men, unisex)
// @Param brand query string false "Brand id or all"
// @Param search query string false "Search text, overrides brand and category"
// @Param minRating query int false "Minimum rating" Enums(0, 3, 4)
// @Param sort query string false "Sort key" Enums(default, price-asc, price-desc, name-asc, name-desc)
// @Param currency query string false "Display currency" Enums(AED, USD, SAR, BHD, OMR, GBP)
// @Param recommended query string false "Comma separated product ids to highlight"
// @Param quizSession query string false "Quiz session whose result is highlighted"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/catalog [get]
func (ctrl *CatalogController) Browse(c *gin.Context) {
	ctx := c.Request.Context()
	f := services.ParseFilterState(c.Request.URL.Query())

	opts := services.BrowseOptions{
		Currency:    c.DefaultQuery("currency", ctrl.DefaultCurrency),
		Recommended: splitIDs(c.Query("recommended")),
	}
	if ctrl.Quiz != nil {
		opts.Recommended = append(opts.Recommended, ctrl.Quiz.RecommendedIDs(ctx, c.Query("quizSession"))...)
	}

	view, err := ctrl.Catalog.Browse(ctx, f, opts)
	if err != nil {
		respondError(c, err, view)
		return
	}
	respondOK(c, http.StatusOK, "Catalog retrieved", view)
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
