// Package filterengine is the storefront's faceted filter engine: it derives
// filter facets from a product collection, applies multi-facet predicate
// filtering (AND across facets, OR within a facet), and reconciles a locally
// owned selection state with one pushed in from outside without feedback
// loops. Everything here is a pure function of its inputs; no I/O, no
// globals.
package filterengine

import (
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
)

// Facet identifies one filterable product dimension.
type Facet string

const (
	FacetCategory        Facet = "category"
	FacetBrand           Facet = "brand"
	FacetType            Facet = "type"
	FacetMaterial        Facet = "material"
	FacetColor           Facet = "color"
	FacetProcessor       Facet = "processor"
	FacetRAM             Facet = "ram"
	FacetFeature         Facet = "feature"
	FacetDisplaySize     Facet = "displaySize"
	FacetOperatingSystem Facet = "operatingSystem"
	FacetCapacity        Facet = "capacity"
)

// AllFacets lists every facet the engine knows, in display order.
var AllFacets = []Facet{
	FacetCategory, FacetBrand, FacetType, FacetMaterial, FacetColor,
	FacetProcessor, FacetRAM, FacetFeature, FacetDisplaySize,
	FacetOperatingSystem, FacetCapacity,
}

// DefaultPageSize matches the storefront's search-result grid.
const DefaultPageSize = 8

// Config parameterizes the engine: which facets are active and how results
// are paged. The three presets below correspond to the three filter widgets
// the storefront renders.
type Config struct {
	Facets   []Facet
	PageSize int
}

// Enabled reports whether the facet participates in extraction/filtering.
func (c Config) Enabled(f Facet) bool {
	for _, g := range c.Facets {
		if g == f {
			return true
		}
	}
	return false
}

func (c Config) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return DefaultPageSize
}

// StaticConfig drives the slim sidebar widget: category, brand and price
// only.
var StaticConfig = Config{
	Facets:   []Facet{FacetCategory, FacetBrand},
	PageSize: DefaultPageSize,
}

// StandardConfig drives the category-browse sidebar.
var StandardConfig = Config{
	Facets: []Facet{
		FacetCategory, FacetBrand, FacetType, FacetMaterial, FacetColor,
	},
	PageSize: DefaultPageSize,
}

// EnhancedConfig drives the search-result page: every facet is live.
var EnhancedConfig = Config{
	Facets:   AllFacets,
	PageSize: DefaultPageSize,
}

// selection returns the selection set for a facet out of a FilterState.
func selection(s *models.FilterState, f Facet) []string {
	switch f {
	case FacetCategory:
		return s.SelectedCategories
	case FacetBrand:
		return s.SelectedBrands
	case FacetType:
		return s.SelectedTypes
	case FacetMaterial:
		return s.SelectedMaterials
	case FacetColor:
		return s.SelectedColors
	case FacetProcessor:
		return s.SelectedProcessors
	case FacetRAM:
		return s.SelectedRAM
	case FacetFeature:
		return s.SelectedFeatures
	case FacetDisplaySize:
		return s.SelectedDisplaySizes
	case FacetOperatingSystem:
		return s.SelectedOperatingSystems
	case FacetCapacity:
		return s.SelectedCapacities
	}
	return nil
}

// setSelection writes the selection set for a facet into a FilterState.
func setSelection(s *models.FilterState, f Facet, values []string) {
	switch f {
	case FacetCategory:
		s.SelectedCategories = values
	case FacetBrand:
		s.SelectedBrands = values
	case FacetType:
		s.SelectedTypes = values
	case FacetMaterial:
		s.SelectedMaterials = values
	case FacetColor:
		s.SelectedColors = values
	case FacetProcessor:
		s.SelectedProcessors = values
	case FacetRAM:
		s.SelectedRAM = values
	case FacetFeature:
		s.SelectedFeatures = values
	case FacetDisplaySize:
		s.SelectedDisplaySizes = values
	case FacetOperatingSystem:
		s.SelectedOperatingSystems = values
	case FacetCapacity:
		s.SelectedCapacities = values
	}
}
