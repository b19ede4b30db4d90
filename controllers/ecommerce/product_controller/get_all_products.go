package product_controller

import (
	"net/http"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetAllProducts godoc
// @Summary Get all storefront products
// @Description Retrieve the full product collection the storefront filters client-side.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/product/all [get]
func GetAllProducts(c *gin.Context) {
	products, err := services.NewCatalogService().Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
