package filterengine

import (
	"sort"
	"strings"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
)

// SortKey selects the ordering applied after filtering, before pagination.
type SortKey string

const (
	SortNone                  SortKey = ""
	SortDiscountHighToLow     SortKey = "discountHighToLow"
	SortPriceLowToHigh        SortKey = "priceLowToHigh"
	SortPriceHighToLow        SortKey = "priceHighToLow"
	SortSoldQuantityHighToLow SortKey = "soldQuantityHighToLow"
)

// NoDataID marks the placeholder record substituted when a filter pass
// matches nothing, so downstream rendering always has a non-empty list.
const NoDataID = "no-data"

// NoDataProduct returns the empty-state placeholder record.
func NoDataProduct() models.Product {
	return models.Product{ID: NoDataID, Title: "no data"}
}

// IsNoData reports whether the product is the empty-state placeholder.
func IsNoData(p *models.Product) bool {
	return p.ID == NoDataID
}

// Query is one filtering request against a working collection.
type Query struct {
	State    models.FilterState
	Text     string
	SaleOnly bool
	SortBy   SortKey
	Page     int // 1-based; values < 1 are treated as 1
	PageSize int // 0 means the config's page size
}

// Result is one page of a filtered, sorted collection. Items is never
// empty: a zero-match pass yields exactly the no-data placeholder.
type Result struct {
	Items      []models.Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Filter returns the subset of products satisfying every active predicate
// of the state: AND across facets, OR within a facet, with facets outside
// the config ignored. Input order is preserved; the input slice is not
// modified.
func Filter(products []models.Product, state models.FilterState, cfg Config) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if Matches(&products[i], &state, cfg) {
			out = append(out, products[i])
		}
	}
	return out
}

// Matches reports whether a single product passes every active predicate.
func Matches(p *models.Product, state *models.FilterState, cfg Config) bool {
	for _, f := range cfg.Facets {
		sel := selection(state, f)
		if len(sel) == 0 {
			continue
		}
		if !matchesAny(p, f, sel) {
			return false
		}
	}
	return matchesPrice(p, state)
}

// matchesAny: at least one resolved value is a member of the selection set.
func matchesAny(p *models.Product, f Facet, sel []string) bool {
	for _, want := range sel {
		if HasValue(p, f, want) {
			return true
		}
	}
	return false
}

// matchesPrice applies the price interval. The pair (0, 0) is the
// "unconstrained" sentinel; max == 0 with min != 0 is an open-ended lower
// bound.
func matchesPrice(p *models.Product, state *models.FilterState) bool {
	if !state.HasPriceFilter() {
		return true
	}
	price := p.Price()
	if state.MaxPrice == 0 {
		return price >= state.MinPrice
	}
	return price >= state.MinPrice && price <= state.MaxPrice
}

// MatchesText is the free-text predicate: a case-insensitive substring
// match against the title and the resolved type, brand and category names.
func MatchesText(p *models.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, hay := range []string{p.Title, p.TypeName(), p.BrandName(), p.CategoryName()} {
		if strings.Contains(strings.ToLower(hay), q) {
			return true
		}
	}
	return false
}

// Apply runs the full pipeline: predicate filter, optional sale-only and
// free-text narrowing, sort, pagination, and the no-data placeholder.
//
// When any structured facet, price bound or the sale toggle is active, the
// free-text query is dropped entirely: structured filters broaden the scope
// back to all matching products instead of narrowing the original search.
func Apply(products []models.Product, q Query, cfg Config) Result {
	structured := q.State.HasSelections() || q.State.HasPriceFilter() || q.SaleOnly

	matched := Filter(products, q.State, cfg)

	if q.SaleOnly {
		kept := matched[:0:0]
		for i := range matched {
			if matched[i].OnSale() {
				kept = append(kept, matched[i])
			}
		}
		matched = kept
	}

	if !structured && q.Text != "" {
		kept := matched[:0:0]
		for i := range matched {
			if MatchesText(&matched[i], q.Text) {
				kept = append(kept, matched[i])
			}
		}
		matched = kept
	}

	sortProducts(matched, q.SortBy)

	return paginate(matched, q, cfg)
}

// sortProducts orders in place. Sorting is stable so that equal keys keep
// the collection's original order.
func sortProducts(items []models.Product, key SortKey) {
	switch key {
	case SortDiscountHighToLow:
		sort.SliceStable(items, func(i, j int) bool {
			return discountPercent(&items[i]) > discountPercent(&items[j])
		})
	case SortPriceLowToHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DiscountPrice < items[j].DiscountPrice
		})
	case SortPriceHighToLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DiscountPrice > items[j].DiscountPrice
		})
	case SortSoldQuantityHighToLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].SoldQuantity > items[j].SoldQuantity
		})
	}
}

// discountPercent derives the markdown percentage used by the discount
// sort: 100 - discountPrice/actualPrice*100.
func discountPercent(p *models.Product) float64 {
	if p.ActualPrice <= 0 {
		return 0
	}
	return 100 - p.DiscountPrice/p.ActualPrice*100
}

func paginate(matched []models.Product, q Query, cfg Config) Result {
	size := q.PageSize
	if size <= 0 {
		size = cfg.pageSize()
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	items := matched[start:end]
	if len(items) == 0 {
		items = []models.Product{NoDataProduct()}
	}

	return Result{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}
