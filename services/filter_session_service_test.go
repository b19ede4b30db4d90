package services

import (
	"testing"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestPushCreatesSessionAndCommitsState(t *testing.T) {
	svc := NewFilterSessionService(nil)

	state, changed, page := svc.Push("s1", models.FilterState{
		SelectedBrands: []string{"Apple"},
	})

	assert.True(t, changed)
	assert.Equal(t, []string{"Apple"}, state.SelectedBrands)
	assert.Equal(t, 1, page)
}

// Pushing the same external state twice must report no change the second
// time: the reconciler's loop guard over HTTP.
func TestPushIdempotent(t *testing.T) {
	svc := NewFilterSessionService(nil)

	ext := models.FilterState{SelectedColors: []string{"Red", "Blue"}}
	_, changed, _ := svc.Push("s1", ext)
	assert.True(t, changed)

	_, changed, _ = svc.Push("s1", ext)
	assert.False(t, changed)

	// Same set in a different order is the same state.
	_, changed, _ = svc.Push("s1", models.FilterState{
		SelectedColors: []string{"Blue", "Red"},
	})
	assert.False(t, changed)
}

func TestPushResetsPage(t *testing.T) {
	svc := NewFilterSessionService(nil)

	svc.Push("s1", models.FilterState{SelectedBrands: []string{"Apple"}})
	assert.Equal(t, 4, svc.SetPage("s1", 4))

	// An unchanged push keeps the page.
	_, _, page := svc.Push("s1", models.FilterState{SelectedBrands: []string{"Apple"}})
	assert.Equal(t, 4, page)

	// A real change resets it.
	_, changed, page := svc.Push("s1", models.FilterState{SelectedBrands: []string{"Lenovo"}})
	assert.True(t, changed)
	assert.Equal(t, 1, page)
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := NewFilterSessionService(nil)

	svc.Push("a", models.FilterState{SelectedBrands: []string{"Apple"}})
	stateB, _ := svc.Get("b")

	assert.Empty(t, stateB.SelectedBrands)
}

func TestClear(t *testing.T) {
	svc := NewFilterSessionService(nil)

	svc.Push("s1", models.FilterState{
		SelectedBrands: []string{"Apple"},
		MinPrice:       10,
		MaxPrice:       99,
	})
	state := svc.Clear("s1")

	assert.True(t, state.IsEmpty())
	_, page := svc.Get("s1")
	assert.Equal(t, 1, page)
}
