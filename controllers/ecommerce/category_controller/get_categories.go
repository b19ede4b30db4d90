package category_controller

import (
	"net/http"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get all storefront categories
// @Description Retrieve the category list. A failed category fetch degrades to an empty list; product filtering by other facets is unaffected.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Router /store/category/all [get]
func GetCategories(c *gin.Context) {
	categories := services.NewCatalogService().Categories(c.Request.Context())

	message := "Categories fetched successfully"
	if len(categories) == 0 {
		message = "No categories available"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, categories))
}
