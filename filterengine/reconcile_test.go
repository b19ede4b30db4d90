package filterengine

import (
	"testing"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReconciler(calls *[]models.FilterState) *Reconciler {
	return NewReconciler(EnhancedConfig, models.PriceRange{Min: 0, Max: 1000},
		func(s models.FilterState) { *calls = append(*calls, s) })
}

func TestReconcilerSyncExternalDoesNotNotify(t *testing.T) {
	var calls []models.FilterState
	r := newTestReconciler(&calls)

	changed := r.SyncExternal(models.FilterState{
		SelectedBrands: []string{"Apple"},
	})

	assert.True(t, changed)
	assert.Equal(t, []string{"Apple"}, r.State().SelectedBrands)
	assert.Empty(t, calls, "a change that originated outside must not echo back")
}

// Reconciler idempotence: the same external state twice causes no second
// overwrite and never a callback.
func TestReconcilerSyncIdempotent(t *testing.T) {
	var calls []models.FilterState
	r := newTestReconciler(&calls)

	ext := models.FilterState{SelectedColors: []string{"Red", "Blue"}}
	assert.True(t, r.SyncExternal(ext))
	assert.False(t, r.SyncExternal(ext))

	// Same set, different order: serialized forms are equal.
	assert.False(t, r.SyncExternal(models.FilterState{
		SelectedColors: []string{"Blue", "Red"},
	}))
	assert.Empty(t, calls)
}

func TestReconcilerToggleNotifiesOnce(t *testing.T) {
	var calls []models.FilterState
	r := newTestReconciler(&calls)

	r.Toggle(FacetBrand, "Apple")

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"Apple"}, calls[0].SelectedBrands)

	// Toggling off returns to the last external (empty) state and
	// notifies again.
	r.Toggle(FacetBrand, "Apple")
	require.Len(t, calls, 2)
	assert.Empty(t, calls[1].SelectedBrands)
}

func TestReconcilerToggleIgnoresFacetsOutsideConfig(t *testing.T) {
	var calls []models.FilterState
	r := NewReconciler(StaticConfig, defaultPriceRange,
		func(s models.FilterState) { calls = append(calls, s) })

	// StaticConfig carries no RAM facet: the toggle must be a no-op.
	r.Toggle(FacetRAM, "16GB")

	assert.Empty(t, r.State().SelectedRAM)
	assert.Empty(t, calls)
}

func TestReconcilerLocalChangeThenMatchingExternal(t *testing.T) {
	var calls []models.FilterState
	r := newTestReconciler(&calls)

	r.Toggle(FacetBrand, "Apple")
	require.Len(t, calls, 1)

	// The parent echoes the state we just reported: no overwrite, no loop.
	assert.False(t, r.SyncExternal(calls[0]))
	require.Len(t, calls, 1)
}

func TestReconcilerMalformedExternalDefaultsToEmptySets(t *testing.T) {
	var calls []models.FilterState
	r := newTestReconciler(&calls)

	r.SyncExternal(models.FilterState{SelectedBrands: []string{"Apple"}})

	state := r.State()
	for _, f := range AllFacets {
		assert.NotNil(t, selection(&state, f), "facet %s", f)
	}
}

func TestReconcilerPriceDraftCommit(t *testing.T) {
	var calls []models.FilterState
	r := newTestReconciler(&calls)

	// Dragging only stages the value.
	r.SetPriceDraft(100, 500)
	assert.Empty(t, calls)
	staged := r.State()
	assert.False(t, staged.HasPriceFilter())
	assert.Equal(t, models.PriceRange{Min: 100, Max: 500}, r.PriceDraft())

	// Confirming commits and notifies.
	r.CommitPrice()
	require.Len(t, calls, 1)
	assert.Equal(t, 100.0, calls[0].MinPrice)
	assert.Equal(t, 500.0, calls[0].MaxPrice)

	// A second confirm without a new draft is a no-op.
	r.CommitPrice()
	assert.Len(t, calls, 1)
}

func TestReconcilerPriceDraftDefaultsToDerivedRange(t *testing.T) {
	r := NewReconciler(EnhancedConfig, models.PriceRange{Min: 45, Max: 550}, nil)

	assert.Equal(t, models.PriceRange{Min: 45, Max: 550}, r.PriceDraft())
}

func TestReconcilerClearAll(t *testing.T) {
	var calls []models.FilterState
	r := newTestReconciler(&calls)

	r.SyncExternal(models.FilterState{
		SelectedBrands: []string{"Apple"},
		MinPrice:       10,
		MaxPrice:       20,
	})
	r.ClearAll()

	require.Len(t, calls, 1)
	assert.True(t, calls[0].IsEmpty())
	cleared := r.State()
	assert.True(t, cleared.IsEmpty())
}

func TestSerializeNormalizes(t *testing.T) {
	a := models.FilterState{SelectedColors: []string{"Red", "Blue"}}
	b := models.FilterState{SelectedColors: []string{"Blue", "Red"}}
	c := models.FilterState{SelectedColors: []string{"Blue"}}

	assert.Equal(t, Serialize(&a), Serialize(&b))
	assert.NotEqual(t, Serialize(&a), Serialize(&c))

	sentinel := models.FilterState{}
	realZero := models.FilterState{MinPrice: 0, MaxPrice: 0}
	assert.Equal(t, Serialize(&sentinel), Serialize(&realZero))
}

func TestReconcilerStateReturnsCopy(t *testing.T) {
	r := NewReconciler(EnhancedConfig, defaultPriceRange, nil)
	r.Toggle(FacetBrand, "Apple")

	state := r.State()
	state.SelectedBrands[0] = "mutated"

	assert.Equal(t, []string{"Apple"}, r.State().SelectedBrands)
}
