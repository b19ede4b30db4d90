package product_controller

import (
	"net/http"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get a single product
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/product/detail/{id} [get]
func GetProductByID(c *gin.Context) {
	product, err := services.NewCatalogService().ProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
