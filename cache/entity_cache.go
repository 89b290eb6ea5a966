package entity_cache

import (
	"sync"
	"time"
)

const TTL = 5 * time.Minute

// ── Per-entity list cache ────────────────────────────────────────────────────
// Stores the active-record listing for each entity kind. The generic list
// endpoint reads from this; every mutation on a kind invalidates its entry.

type listEntry struct {
	rows      any
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache = map[string]*listEntry{}
)

func GetList(kind string) (any, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if e, ok := listCache[kind]; ok && time.Since(e.fetchedAt) < TTL {
		return e.rows, true
	}
	return nil, false
}

func SetList(kind string, rows any) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache[kind] = &listEntry{rows: rows, fetchedAt: time.Now()}
}

// ── Invalidation ─────────────────────────────────────────────────────────────

// Invalidate drops the cached listing for one kind. Cascading deletes touch
// several kinds at once; call it per affected kind.
func Invalidate(kinds ...string) {
	listMu.Lock()
	defer listMu.Unlock()
	for _, kind := range kinds {
		delete(listCache, kind)
	}
}

// InvalidateAll clears every cached listing.
func InvalidateAll() {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = map[string]*listEntry{}
}
