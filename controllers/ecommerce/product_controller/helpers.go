package product_controller

import (
	"strconv"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/filterengine"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.App.Search.PageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = config.App.Search.PageSize
	}

	return page, limit
}

// parseFilterState builds a FilterState out of repeatable query params.
// Absent params leave their facet unconstrained; absent price params leave
// the (0, 0) sentinel in place.
func parseFilterState(c *gin.Context) models.FilterState {
	state := models.FilterState{
		SelectedCategories:       c.QueryArray("category"),
		SelectedBrands:           c.QueryArray("brand"),
		SelectedMaterials:        c.QueryArray("material"),
		SelectedTypes:            c.QueryArray("type"),
		SelectedColors:           c.QueryArray("color"),
		SelectedProcessors:       c.QueryArray("processor"),
		SelectedRAM:              c.QueryArray("ram"),
		SelectedFeatures:         c.QueryArray("feature"),
		SelectedDisplaySizes:     c.QueryArray("displaySize"),
		SelectedOperatingSystems: c.QueryArray("os"),
		SelectedCapacities:       c.QueryArray("capacity"),
	}

	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		state.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		state.MaxPrice = v
	}

	return state
}

func parseSortKey(c *gin.Context) filterengine.SortKey {
	switch key := filterengine.SortKey(c.Query("sortBy")); key {
	case filterengine.SortDiscountHighToLow,
		filterengine.SortPriceLowToHigh,
		filterengine.SortPriceHighToLow,
		filterengine.SortSoldQuantityHighToLow:
		return key
	default:
		return filterengine.SortNone
	}
}
