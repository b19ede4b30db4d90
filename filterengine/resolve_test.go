package filterengine

import (
	"testing"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveValuesTopLevelWinsOverSpecifications(t *testing.T) {
	p := models.Product{
		Processor: "Apple M3",
		Specifications: []models.SpecificationGroup{
			{Name: "Processor", Detail: []models.SpecificationDetail{
				{Name: "Chip", Value: "Intel i7"},
			}},
		},
	}

	assert.Equal(t, []string{"Apple M3"}, ResolveValues(&p, FacetProcessor))
}

func TestResolveValuesSpecificationFallback(t *testing.T) {
	p := models.Product{
		Specifications: []models.SpecificationGroup{
			{Name: "Memory", Detail: []models.SpecificationDetail{
				{Name: "RAM", Value: "16GB"},
			}},
			{Name: "Display & Screen", Detail: []models.SpecificationDetail{
				{Name: "Size", Value: "15.6 inch"},
			}},
			{Name: "Storage", Detail: []models.SpecificationDetail{
				{Name: "SSD", Value: "512GB"},
			}},
		},
	}

	assert.Equal(t, []string{"16GB"}, ResolveValues(&p, FacetRAM))
	assert.Equal(t, []string{"15.6 inch"}, ResolveValues(&p, FacetDisplaySize))
	assert.Equal(t, []string{"512GB"}, ResolveValues(&p, FacetCapacity))
}

func TestResolveValuesSpecGroupNameIsCaseInsensitive(t *testing.T) {
	p := models.Product{
		Specifications: []models.SpecificationGroup{
			{Name: "OPERATING SYSTEM", Detail: []models.SpecificationDetail{
				{Name: "OS", Value: "Windows 11"},
			}},
		},
	}

	assert.Equal(t, []string{"Windows 11"}, ResolveValues(&p, FacetOperatingSystem))
}

func TestResolveValuesRelationalShapes(t *testing.T) {
	embedded := models.Product{
		CategoryID: &models.NameRef{ID: "c1", Name: "Laptops"},
		Category:   "ignored flat value",
	}
	flat := models.Product{Brand: "  Lenovo  "}

	assert.Equal(t, []string{"Laptops"}, ResolveValues(&embedded, FacetCategory))
	assert.Equal(t, []string{"Lenovo"}, ResolveValues(&flat, FacetBrand))
}

func TestResolveValuesMultiValuedTrimsAndDropsEmpty(t *testing.T) {
	p := models.Product{
		Colors:   []string{" Red ", "", "Blue"},
		Features: []string{"Backlit Keyboard", "  "},
	}

	assert.Equal(t, []string{"Red", "Blue"}, ResolveValues(&p, FacetColor))
	assert.Equal(t, []string{"Backlit Keyboard"}, ResolveValues(&p, FacetFeature))
}

func TestResolveValuesMalformedProductYieldsNothing(t *testing.T) {
	var p models.Product

	for _, f := range AllFacets {
		assert.Empty(t, ResolveValues(&p, f), "facet %s", f)
	}
}

func TestHasValueIsExactAndCaseSensitive(t *testing.T) {
	p := models.Product{Brand: "Apple"}

	assert.True(t, HasValue(&p, FacetBrand, "Apple"))
	assert.False(t, HasValue(&p, FacetBrand, "apple"))
	assert.False(t, HasValue(&p, FacetBrand, "App"))
}
