package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog_cache "github.com/Anvogue-Ecommerce/anvogue-storefront-backend/cache"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/filterengine"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSearchRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, config.LoadSettings())

	// Handlers read the snapshot, so a seeded cache keeps Postgres out of
	// the test.
	catalog_cache.Set([]models.Product{
		{
			ID:            "p1",
			Title:         "ThinkBook 14",
			ActualPrice:   1200,
			DiscountPrice: 999,
			CategoryID:    &models.NameRef{ID: "c1", Name: "Laptops"},
			Brand:         "Lenovo",
		},
		{
			ID:            "p2",
			Title:         "MacBook Air",
			ActualPrice:   1400,
			DiscountPrice: 1400,
			CategoryID:    &models.NameRef{ID: "c1", Name: "Laptops"},
			Brand:         "Apple",
		},
		{
			ID:            "p3",
			Title:         "Galaxy S24",
			ActualPrice:   899,
			DiscountPrice: 749,
			CategoryID:    &models.NameRef{ID: "c2", Name: "Smartphones"},
			Brand:         "Samsung",
		},
	}, []models.Category{})
	t.Cleanup(catalog_cache.Invalidate)

	router := gin.New()
	router.GET("/store/product/search", SearchProducts)
	router.GET("/store/product/all", GetAllProducts)
	return router
}

type searchEnvelope struct {
	Message string                `json:"message"`
	Data    models.SearchResponse `json:"data"`
	Error   bool                  `json:"error"`
}

func doSearch(t *testing.T, router *gin.Engine, path string) searchEnvelope {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body searchEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSearchProductsNoFilters(t *testing.T) {
	router := setupSearchRouter(t)

	body := doSearch(t, router, "/store/product/search")

	assert.Equal(t, 3, body.Data.Total)
	assert.Len(t, body.Data.Products, 3)
	require.NotNil(t, body.Data.Facets)
	assert.NotEmpty(t, body.Data.Facets.Brands)
}

func TestSearchProductsBrandFilter(t *testing.T) {
	router := setupSearchRouter(t)

	body := doSearch(t, router, "/store/product/search?brand=Apple")

	require.Equal(t, 1, body.Data.Total)
	assert.Equal(t, "p2", body.Data.Products[0].ID)
}

func TestSearchProductsPriceRange(t *testing.T) {
	router := setupSearchRouter(t)

	body := doSearch(t, router, "/store/product/search?minPrice=900&maxPrice=1000")

	require.Equal(t, 1, body.Data.Total)
	assert.Equal(t, "p1", body.Data.Products[0].ID)
}

func TestSearchProductsNoMatchReturnsSentinel(t *testing.T) {
	router := setupSearchRouter(t)

	body := doSearch(t, router, "/store/product/search?brand=Nokia")

	assert.Zero(t, body.Data.Total)
	require.Len(t, body.Data.Products, 1)
	assert.Equal(t, filterengine.NoDataID, body.Data.Products[0].ID)
}

func TestSearchProductsTextSuppressedByFacet(t *testing.T) {
	router := setupSearchRouter(t)

	// Text alone narrows to the MacBook.
	body := doSearch(t, router, "/store/product/search?q=macbook")
	require.Equal(t, 1, body.Data.Total)

	// An active facet drops the text query: all laptops come back.
	body = doSearch(t, router, "/store/product/search?q=macbook&category=Laptops")
	assert.Equal(t, 2, body.Data.Total)
}

func TestGetAllProducts(t *testing.T) {
	router := setupSearchRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/product/all", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 3)
}
