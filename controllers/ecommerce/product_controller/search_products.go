package product_controller

import (
	"net/http"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/filterengine"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// SearchProducts godoc
// @Summary Search storefront products
// @Description Run the faceted filter pipeline over the catalog: free-text query, facet selections, price range, sale toggle, sorting and pagination. When any facet or the sale toggle is active the free-text query is dropped; structured filters take precedence.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Free-text query (title, type, brand, category)"
// @Param category query []string false "Category names (repeatable)"
// @Param brand query []string false "Brand names (repeatable)"
// @Param type query []string false "Type names (repeatable)"
// @Param material query []string false "Material names (repeatable)"
// @Param color query []string false "Colors (repeatable)"
// @Param processor query []string false "Processors (repeatable)"
// @Param ram query []string false "RAM values (repeatable)"
// @Param feature query []string false "Features (repeatable)"
// @Param displaySize query []string false "Display sizes (repeatable)"
// @Param os query []string false "Operating systems (repeatable)"
// @Param capacity query []string false "Capacities (repeatable)"
// @Param minPrice query number false "Minimum price (0 with maxPrice 0 means unconstrained)"
// @Param maxPrice query number false "Maximum price (0 means open-ended when minPrice is set)"
// @Param sale query bool false "Sale-only toggle"
// @Param sortBy query string false "Sort key (discountHighToLow, priceLowToHigh, priceHighToLow, soldQuantityHighToLow)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(8)
// @Success 200 {object} models.ApiResponse{data=models.SearchResponse} "Search results"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/product/search [get]
func SearchProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	products, err := services.NewCatalogService().Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	query := filterengine.Query{
		State:    parseFilterState(c),
		Text:     c.Query("q"),
		SaleOnly: c.Query("sale") == "true",
		SortBy:   parseSortKey(c),
		Page:     page,
		PageSize: limit,
	}

	result := filterengine.Apply(products, query, filterengine.EnhancedConfig)
	summary := filterengine.Extract(products, filterengine.EnhancedConfig, nil)
	metadata := summary.Metadata()

	payload := models.SearchResponse{
		Products:   result.Items,
		Facets:     &metadata,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Search results fetched successfully",
		payload,
		&models.Pagination{
			Page:       result.Page,
			Limit:      result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	))
}
