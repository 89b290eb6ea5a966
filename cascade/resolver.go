package cascade

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kartify-commerce/kartify-backend/store"
)

// Result reports how many rows each entity was affected by a cascading
// operation. Keys are Kind strings; the owning entity appears under its
// own kind alongside its dependents.
type Result map[string]int64

// Resolver fans an operation on one entity out to its dependents per
// the declared dependency map.
type Resolver struct {
	store store.Store
}

// NewResolver builds a resolver over the given store.
func NewResolver(st store.Store) *Resolver {
	return &Resolver{store: st}
}

// Count returns, without modifying anything, how many rows Delete or
// SoftDelete would touch for the given owning rows. Entities with zero
// dependents still appear in the result with a zero count.
func (r *Resolver) Count(ctx context.Context, kind Kind, f store.Filter) (Result, error) {
	ids, err := r.ownerIDs(ctx, kind, f)
	if err != nil {
		return nil, err
	}
	res := Result{string(kind): int64(len(ids))}
	if len(ids) == 0 {
		return res, nil
	}
	for _, rel := range relations[kind] {
		n, err := r.store.Count(ctx, NewModel(rel.Kind), matchColumns(rel.Columns, ids))
		if err != nil {
			return nil, fmt.Errorf("count %s dependents of %s: %w", rel.Kind, kind, err)
		}
		res[string(rel.Kind)] += n
	}
	return res, nil
}

// Delete hard-deletes the owning rows and every dependent row that
// references them. Dependents are removed first so a partial failure
// never leaves dependents pointing at missing owners.
func (r *Resolver) Delete(ctx context.Context, kind Kind, f store.Filter) (Result, error) {
	return r.resolve(ctx, kind, f, func(relKind Kind, relFilter store.Filter) (int64, error) {
		return r.store.Destroy(ctx, NewModel(relKind), relFilter)
	})
}

// SoftDelete marks the owning rows and their dependents as deleted by
// flipping is_deleted, leaving the rows in place.
func (r *Resolver) SoftDelete(ctx context.Context, kind Kind, f store.Filter) (Result, error) {
	patch := store.Patch{"is_deleted": true, "updated_at": time.Now()}
	return r.resolve(ctx, kind, f, func(relKind Kind, relFilter store.Filter) (int64, error) {
		return r.store.Update(ctx, NewModel(relKind), relFilter, patch)
	})
}

func (r *Resolver) resolve(ctx context.Context, kind Kind, f store.Filter, apply func(Kind, store.Filter) (int64, error)) (Result, error) {
	ids, err := r.ownerIDs(ctx, kind, f)
	if err != nil {
		return nil, err
	}
	res := Result{string(kind): 0}
	if len(ids) == 0 {
		return res, nil
	}
	for _, rel := range relations[kind] {
		n, err := apply(rel.Kind, matchColumns(rel.Columns, ids))
		if err != nil {
			return nil, fmt.Errorf("resolve %s dependents of %s: %w", rel.Kind, kind, err)
		}
		res[string(rel.Kind)] += n
	}
	n, err := apply(kind, store.In("id", ids))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", kind, err)
	}
	// Self-referential kinds (user via added_by/updated_by) already have
	// dependents accumulated under their own key; the owners add to it.
	res[string(kind)] += n
	log.Debug().Str("kind", string(kind)).Int("owners", len(ids)).Msg("[cascade.resolve] fan-out complete")
	return res, nil
}

func (r *Resolver) ownerIDs(ctx context.Context, kind Kind, f store.Filter) ([]int, error) {
	if !Known(kind) {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	rows := NewSlice(kind)
	if err := r.store.FindAll(ctx, rows, f); err != nil {
		return nil, fmt.Errorf("find %s owners: %w", kind, err)
	}
	return idsOf(rows), nil
}

// matchColumns matches rows where any of the foreign key columns holds
// one of the owning ids.
func matchColumns(columns []string, ids []int) store.Filter {
	filters := make([]store.Filter, 0, len(columns))
	for _, col := range columns {
		filters = append(filters, store.In(col, ids))
	}
	if len(filters) == 1 {
		return filters[0]
	}
	return store.Or(filters...)
}
