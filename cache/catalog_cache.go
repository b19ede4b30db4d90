package catalog_cache

import (
	"sync"
	"time"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
)

// DefaultTTL bounds how stale a served snapshot may be.
const DefaultTTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// One immutable snapshot of the full product collection plus the category
// list. The filter engine and every storefront read go through this instead
// of hitting Postgres per request; callers must treat the slices as
// read-only.

type Snapshot struct {
	Products   []models.Product
	Categories []models.Category
	FetchedAt  time.Time
}

var (
	mu       sync.RWMutex
	snapshot *Snapshot
	ttl      = DefaultTTL
)

// SetTTL overrides the freshness window (from app settings, at startup).
func SetTTL(d time.Duration) {
	if d <= 0 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	ttl = d
}

// Get returns the current snapshot when it is still fresh.
func Get() (*Snapshot, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if snapshot != nil && time.Since(snapshot.FetchedAt) < ttl {
		return snapshot, true
	}
	return nil, false
}

// Stale returns the snapshot regardless of age. Used as a fallback when a
// refresh fails: stale products beat an empty storefront.
func Stale() (*Snapshot, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if snapshot != nil {
		return snapshot, true
	}
	return nil, false
}

// Set replaces the snapshot.
func Set(products []models.Product, categories []models.Category) *Snapshot {
	mu.Lock()
	defer mu.Unlock()
	snapshot = &Snapshot{
		Products:   products,
		Categories: categories,
		FetchedAt:  time.Now(),
	}
	return snapshot
}

// ── Invalidate (call on any catalog mutation) ────────────────────────────────

func Invalidate() {
	mu.Lock()
	snapshot = nil
	mu.Unlock()
}
