package filterengine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
)

// Reconciler keeps a locally owned FilterState in step with one owned by an
// outside party (the page hosting the filter widget, or a client pushing
// session state over HTTP). Changes flow in whichever direction changed
// last; a one-shot guard breaks the "parent pushes down, child notifies up"
// cycle so neither side can re-trigger the other for a change it originated.
type Reconciler struct {
	cfg          Config
	defaultRange models.PriceRange

	internal     models.FilterState
	lastExternal string
	syncing      bool

	// priceDraft is the in-flight slider value; it becomes part of the
	// state only on CommitPrice.
	priceDraft *models.PriceRange

	onChange func(models.FilterState)
}

// NewReconciler builds a reconciler with an empty committed state. onChange
// fires whenever the committed state diverges from the last state seen from
// outside; it may be nil.
func NewReconciler(cfg Config, defaultRange models.PriceRange, onChange func(models.FilterState)) *Reconciler {
	r := &Reconciler{
		cfg:          cfg,
		defaultRange: defaultRange,
		onChange:     onChange,
	}
	r.internal = r.normalize(models.FilterState{})
	r.lastExternal = Serialize(&r.internal)
	return r
}

// State returns a copy of the committed state.
func (r *Reconciler) State() models.FilterState {
	return cloneState(&r.internal)
}

// PriceDraft returns the staged slider value, falling back to the committed
// bounds and then to the default range.
func (r *Reconciler) PriceDraft() models.PriceRange {
	if r.priceDraft != nil {
		return *r.priceDraft
	}
	if r.internal.HasPriceFilter() {
		return models.PriceRange{Min: r.internal.MinPrice, Max: r.internal.MaxPrice}
	}
	return r.defaultRange
}

// SyncExternal folds in a state pushed from outside. It returns true when
// the external state differed from the last one seen and the committed
// state was overwritten from it. A sync never fires onChange: the guard is
// set for the duration of the overwrite so the notify path stays quiet for
// a change that originated outside.
func (r *Reconciler) SyncExternal(external models.FilterState) bool {
	ext := r.normalize(external)
	serialized := Serialize(&ext)
	if serialized == r.lastExternal {
		return false
	}

	r.syncing = true
	r.internal = ext
	r.lastExternal = serialized
	r.priceDraft = nil
	r.syncing = false
	return true
}

// Toggle flips membership of value in the facet's selection set and
// notifies if the committed state now differs from the external one.
// Facets outside the config are ignored.
func (r *Reconciler) Toggle(f Facet, value string) {
	if !r.cfg.Enabled(f) {
		return
	}
	sel := selection(&r.internal, f)
	next := make([]string, 0, len(sel)+1)
	removed := false
	for _, v := range sel {
		if v == value {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, value)
	}
	setSelection(&r.internal, f, next)
	r.notify()
}

// SetPriceDraft stages a slider value without committing it. No
// notification fires until CommitPrice.
func (r *Reconciler) SetPriceDraft(min, max float64) {
	r.priceDraft = &models.PriceRange{Min: min, Max: max}
}

// CommitPrice applies the staged slider value to the committed state.
func (r *Reconciler) CommitPrice() {
	if r.priceDraft == nil {
		return
	}
	r.internal.MinPrice = r.priceDraft.Min
	r.internal.MaxPrice = r.priceDraft.Max
	r.priceDraft = nil
	r.notify()
}

// ClearAll resets the committed state to empty (price back to the
// unconstrained sentinel) and notifies.
func (r *Reconciler) ClearAll() {
	r.internal = r.normalize(models.FilterState{})
	r.priceDraft = nil
	r.notify()
}

// notify fires onChange once when the committed state has diverged from the
// last external state, then records the new form as seen. Suppressed while
// a sync-from-outside is mid-flight.
func (r *Reconciler) notify() {
	if r.syncing {
		return
	}
	serialized := Serialize(&r.internal)
	if serialized == r.lastExternal {
		return
	}
	r.lastExternal = serialized
	if r.onChange != nil {
		r.onChange(cloneState(&r.internal))
	}
}

// normalize replaces missing selection slices with empty ones so a
// malformed external state never leaves a facet nil. Price bounds pass
// through; the (0, 0) sentinel stays meaningful.
func (r *Reconciler) normalize(s models.FilterState) models.FilterState {
	for _, f := range AllFacets {
		if selection(&s, f) == nil {
			setSelection(&s, f, []string{})
		}
	}
	return s
}

func cloneState(s *models.FilterState) models.FilterState {
	out := *s
	for _, f := range AllFacets {
		sel := selection(s, f)
		cp := make([]string, len(sel))
		copy(cp, sel)
		setSelection(&out, f, cp)
	}
	return out
}

// Serialize produces the normalized form used to compare states: selection
// sets are sorted (order and duplicates are irrelevant to set semantics)
// and price bounds appended. Two states serialize equal iff they impose the
// same constraints.
func Serialize(s *models.FilterState) string {
	var b strings.Builder
	for _, f := range AllFacets {
		sel := selection(s, f)
		sorted := make([]string, len(sel))
		copy(sorted, sel)
		sort.Strings(sorted)
		b.WriteString(string(f))
		b.WriteByte('=')
		b.WriteString(strings.Join(sorted, ","))
		b.WriteByte(';')
	}
	fmt.Fprintf(&b, "price=%g:%g", s.MinPrice, s.MaxPrice)
	return b.String()
}
