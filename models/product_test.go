package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRefUnmarshalBothShapes(t *testing.T) {
	var embedded Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "p1",
		"title": "ThinkBook",
		"categoryId": {"_id": "c1", "name": "Laptops"},
		"brandId": "Lenovo"
	}`), &embedded))

	assert.Equal(t, "Laptops", embedded.CategoryName())
	assert.Equal(t, "c1", embedded.CategoryID.ID)
	assert.Equal(t, "Lenovo", embedded.BrandName())
	assert.Empty(t, embedded.BrandID.ID)
}

func TestNameRefPreferredOverFlatField(t *testing.T) {
	p := Product{
		TypeID: &NameRef{Name: "Ultrabook"},
		Type:   "Notebook",
	}
	assert.Equal(t, "Ultrabook", p.TypeName())

	flat := Product{Material: " Aluminium "}
	assert.Equal(t, "Aluminium", flat.MaterialName())
}

func TestProductPriceFallbackChain(t *testing.T) {
	assert.Equal(t, 90.0, (&Product{ActualPrice: 100, DiscountPrice: 90}).Price())
	assert.Equal(t, 100.0, (&Product{ActualPrice: 100}).Price())
	assert.Zero(t, (&Product{}).Price())
}

func TestProductOnSaleIsStrict(t *testing.T) {
	assert.True(t, (&Product{ActualPrice: 100, DiscountPrice: 90}).OnSale())
	assert.False(t, (&Product{ActualPrice: 100, DiscountPrice: 100}).OnSale())
}

func TestFilterStateEmptiness(t *testing.T) {
	var s FilterState
	assert.True(t, s.IsEmpty())
	assert.False(t, s.HasPriceFilter(), "(0,0) is the unconstrained sentinel")

	s.MinPrice = 100
	assert.True(t, s.HasPriceFilter())

	s = FilterState{SelectedCapacities: []string{"512GB"}}
	assert.True(t, s.HasSelections())
	assert.False(t, s.IsEmpty())
}

func TestSpecificationGroupRoundTrip(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "p1",
		"specifications": [
			{"name": "Memory", "detail": [{"name": "RAM", "value": "16GB"}]}
		]
	}`), &p))

	require.Len(t, p.Specifications, 1)
	assert.Equal(t, "16GB", p.Specifications[0].Detail[0].Value)
}
