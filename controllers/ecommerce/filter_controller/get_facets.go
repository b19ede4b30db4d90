package filter_controller

import (
	"net/http"
	"strconv"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/filterengine"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetFacets godoc
// @Summary Get filter facet metadata
// @Description Derive every facet's distinct values with count badges plus the padded price range from the full catalog. Counts are against the whole collection, not cross-filtered.
// @Tags Storefront - Filters
// @Produce json
// @Param initialMinPrice query number false "Explicit price range lower bound (overrides derivation)"
// @Param initialMaxPrice query number false "Explicit price range upper bound (overrides derivation)"
// @Success 200 {object} models.ApiResponse{data=models.FacetMetadata} "Facets fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/filters/facets [get]
func GetFacets(c *gin.Context) {
	products, err := services.NewCatalogService().Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter facets"))
		return
	}

	summary := filterengine.Extract(products, filterengine.EnhancedConfig, initialRange(c))
	metadata := summary.Metadata()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Facets fetched successfully", metadata))
}

// initialRange reads the optional caller-supplied price range; it takes
// precedence over derivation when both bounds parse.
func initialRange(c *gin.Context) *models.PriceRange {
	minStr, maxStr := c.Query("initialMinPrice"), c.Query("initialMaxPrice")
	if minStr == "" || maxStr == "" {
		return nil
	}
	min, errMin := strconv.ParseFloat(minStr, 64)
	max, errMax := strconv.ParseFloat(maxStr, 64)
	if errMin != nil || errMax != nil {
		return nil
	}
	return &models.PriceRange{Min: min, Max: max}
}
