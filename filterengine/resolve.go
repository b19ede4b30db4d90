package filterengine

import (
	"strings"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
)

// Facet values live in two places on a product: a top-level field, or nested
// inside the specifications list. Resolution tries the top-level field first
// and only falls back to scanning specification groups whose name contains
// one of the facet's keywords (case-insensitive).

// specKeywords maps a facet to the substrings that identify its
// specification groups.
var specKeywords = map[Facet][]string{
	FacetProcessor:       {"processor", "cpu"},
	FacetRAM:             {"memory", "ram"},
	FacetFeature:         {"feature"},
	FacetDisplaySize:     {"display", "screen"},
	FacetOperatingSystem: {"os", "operating system"},
	FacetCapacity:        {"capacity", "storage"},
}

// ResolveValues returns every value the product carries for the facet,
// trimmed and with empties dropped. Multi-valued facets (colors, features)
// can return several values; scalar facets return at most one top-level
// value but may return several specification-derived ones.
func ResolveValues(p *models.Product, f Facet) []string {
	switch f {
	case FacetCategory:
		return single(p.CategoryName())
	case FacetBrand:
		return single(p.BrandName())
	case FacetType:
		return single(p.TypeName())
	case FacetMaterial:
		return single(p.MaterialName())
	case FacetColor:
		return trimAll(p.Colors)
	case FacetProcessor:
		return scalarOrSpec(p, p.Processor, f)
	case FacetRAM:
		return scalarOrSpec(p, p.RAM, f)
	case FacetDisplaySize:
		return scalarOrSpec(p, p.DisplaySize, f)
	case FacetOperatingSystem:
		return scalarOrSpec(p, p.OperatingSystem, f)
	case FacetCapacity:
		return scalarOrSpec(p, p.Capacity, f)
	case FacetFeature:
		if vals := trimAll(p.Features); len(vals) > 0 {
			return vals
		}
		return specValues(p, specKeywords[f])
	}
	return nil
}

// HasValue reports whether any of the product's resolved values for the
// facet equals the given value (exact, case-sensitive).
func HasValue(p *models.Product, f Facet, value string) bool {
	for _, v := range ResolveValues(p, f) {
		if v == value {
			return true
		}
	}
	return false
}

func scalarOrSpec(p *models.Product, top string, f Facet) []string {
	if v := strings.TrimSpace(top); v != "" {
		return []string{v}
	}
	return specValues(p, specKeywords[f])
}

// specValues collects every detail value from specification groups whose
// name contains one of the keywords. Malformed groups contribute nothing.
func specValues(p *models.Product, keywords []string) []string {
	var out []string
	for _, group := range p.Specifications {
		name := strings.ToLower(group.Name)
		if !containsAny(name, keywords) {
			continue
		}
		for _, d := range group.Detail {
			if v := strings.TrimSpace(d.Value); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
