package product_controller

import (
	"net/http"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProductsByCategory godoc
// @Summary Get products in one category
// @Description Retrieve the server-side category slice of the catalog. The id may be a category id or a category name.
// @Tags Storefront - Products
// @Produce json
// @Param categoryId path string true "Category id or name"
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/product/category/{categoryId} [get]
func GetProductsByCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")

	products, err := services.NewCatalogService().ProductsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
