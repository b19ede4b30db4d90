package filterengine

import (
	"math"
	"sort"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
)

// FacetValues holds the distinct values of one facet plus per-value counts.
// Counts are taken against the full working collection, not cross-filtered
// by the other active facets: the badge answers "how many total", not "how
// many if combined with my other filters".
type FacetValues struct {
	Values []string
	Counts map[string]int
}

// Options converts the facet into the wire shape used by the filter UI.
func (fv FacetValues) Options() []models.FilterOption {
	out := make([]models.FilterOption, 0, len(fv.Values))
	for _, v := range fv.Values {
		out = append(out, models.FilterOption{Label: v, Value: v, Count: fv.Counts[v]})
	}
	return out
}

// Summary is the result of a full facet extraction pass.
type Summary struct {
	Facets     map[Facet]FacetValues
	PriceRange models.PriceRange
}

// Extract scans the collection once per active facet and derives the
// alphabetically sorted distinct value set with counts, plus the padded
// price range. An empty collection yields empty facets and the default
// range. initial, when non-nil, overrides the derived price range.
func Extract(products []models.Product, cfg Config, initial *models.PriceRange) Summary {
	sum := Summary{
		Facets:     make(map[Facet]FacetValues, len(cfg.Facets)),
		PriceRange: DerivePriceRange(products, initial),
	}
	for _, f := range cfg.Facets {
		sum.Facets[f] = extractFacet(products, f)
	}
	return sum
}

func extractFacet(products []models.Product, f Facet) FacetValues {
	counts := make(map[string]int)
	for i := range products {
		// A product counts once per distinct value it resolves to, even
		// when a value appears twice on it (duplicate color entries).
		seen := make(map[string]bool)
		for _, v := range ResolveValues(&products[i], f) {
			if !seen[v] {
				seen[v] = true
				counts[v]++
			}
		}
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	return FacetValues{Values: values, Counts: counts}
}

// defaultPriceRange is used when no product carries a positive price.
var defaultPriceRange = models.PriceRange{Min: 0, Max: 1000}

// DerivePriceRange collects effective prices, drops non-positive ones, and
// pads the observed [min, max] by 10% on each side (floored, clamped at 0 on
// the low end; ceiled on the high end). An explicit initial range wins.
func DerivePriceRange(products []models.Product, initial *models.PriceRange) models.PriceRange {
	if initial != nil {
		return *initial
	}

	lo, hi := math.MaxFloat64, 0.0
	found := false
	for i := range products {
		price := products[i].Price()
		if price <= 0 {
			continue
		}
		found = true
		if price < lo {
			lo = price
		}
		if price > hi {
			hi = price
		}
	}
	if !found {
		return defaultPriceRange
	}

	padded := models.PriceRange{
		Min: math.Floor(lo - lo*0.10),
		Max: math.Ceil(hi + hi*0.10),
	}
	if padded.Min < 0 {
		padded.Min = 0
	}
	return padded
}

// Metadata assembles the HTTP facet payload from an extraction pass.
func (s Summary) Metadata() models.FacetMetadata {
	opt := func(f Facet) []models.FilterOption {
		if fv, ok := s.Facets[f]; ok {
			return fv.Options()
		}
		return []models.FilterOption{}
	}
	return models.FacetMetadata{
		Categories:       opt(FacetCategory),
		Brands:           opt(FacetBrand),
		Types:            opt(FacetType),
		Materials:        opt(FacetMaterial),
		Colors:           opt(FacetColor),
		Processors:       opt(FacetProcessor),
		RAM:              opt(FacetRAM),
		Features:         opt(FacetFeature),
		DisplaySizes:     opt(FacetDisplaySize),
		OperatingSystems: opt(FacetOperatingSystem),
		Capacities:       opt(FacetCapacity),
		PriceRange:       s.PriceRange,
	}
}
