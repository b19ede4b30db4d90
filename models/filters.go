// models/filters.go
package models

// FilterState is the committed facet selection for a browse/search view.
// Each selection is a set of chosen values; an empty set imposes no
// constraint for that facet. The price pair (0, 0) is a sentinel meaning
// "no price filter applied" and is distinct from a real 0-0 range.
type FilterState struct {
	SelectedCategories       []string `json:"selectedCategories"`
	SelectedBrands           []string `json:"selectedBrands"`
	SelectedMaterials        []string `json:"selectedMaterials"`
	SelectedTypes            []string `json:"selectedTypes"`
	SelectedColors           []string `json:"selectedColors"`
	SelectedProcessors       []string `json:"selectedProcessors"`
	SelectedRAM              []string `json:"selectedRAM"`
	SelectedFeatures         []string `json:"selectedFeatures"`
	SelectedDisplaySizes     []string `json:"selectedDisplaySizes"`
	SelectedOperatingSystems []string `json:"selectedOperatingSystems"`
	SelectedCapacities       []string `json:"selectedCapacities"`

	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// HasPriceFilter reports whether the price constraint is active, i.e. the
// pair is not the (0, 0) sentinel.
func (s *FilterState) HasPriceFilter() bool {
	return s.MinPrice != 0 || s.MaxPrice != 0
}

// HasSelections reports whether any facet selection set is non-empty.
func (s *FilterState) HasSelections() bool {
	sets := [][]string{
		s.SelectedCategories, s.SelectedBrands, s.SelectedMaterials,
		s.SelectedTypes, s.SelectedColors, s.SelectedProcessors,
		s.SelectedRAM, s.SelectedFeatures, s.SelectedDisplaySizes,
		s.SelectedOperatingSystems, s.SelectedCapacities,
	}
	for _, set := range sets {
		if len(set) > 0 {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the state imposes no constraint at all.
func (s *FilterState) IsEmpty() bool {
	return !s.HasSelections() && !s.HasPriceFilter()
}

// FilterOption is a single facet value with its count badge.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange is the min/max price bracket shown on the price slider.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacetMetadata is the full filter metadata payload for the storefront:
// every facet's distinct values with counts, plus the padded price range.
type FacetMetadata struct {
	Categories       []FilterOption `json:"categories"`
	Brands           []FilterOption `json:"brands"`
	Types            []FilterOption `json:"types"`
	Materials        []FilterOption `json:"materials"`
	Colors           []FilterOption `json:"colors"`
	Processors       []FilterOption `json:"processors"`
	RAM              []FilterOption `json:"ram"`
	Features         []FilterOption `json:"features"`
	DisplaySizes     []FilterOption `json:"displaySizes"`
	OperatingSystems []FilterOption `json:"operatingSystems"`
	Capacities       []FilterOption `json:"capacities"`
	PriceRange       PriceRange     `json:"priceRange"`
}
