// Package store is the data-access layer consumed by the auth service
// and the cascade resolver. The core only ever needs five operations
// over a small predicate algebra, so both a GORM-backed store and an
// in-memory store (used by the test suite and the seeder) satisfy the
// same interface.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindOne when no row matches the filter.
var ErrNotFound = errors.New("record not found")

// Patch is a set of column updates. Values may be plain values or an
// IncrValue for an atomic column increment.
type Patch map[string]any

// IncrValue asks the store to increment the column server-side rather
// than writing a value read earlier. This keeps counters like the
// login retry limit safe under concurrent writers.
type IncrValue struct {
	Delta int
}

// Incr builds an atomic increment patch value.
func Incr(delta int) IncrValue { return IncrValue{Delta: delta} }

// Store is the abstract data-access contract.
//
// dest for FindOne is a pointer to a model struct, for FindAll a
// pointer to a slice of model structs. model arguments carry only the
// type; their field values are ignored. A nil filter matches all rows.
type Store interface {
	Create(ctx context.Context, entity any) error
	FindOne(ctx context.Context, dest any, f Filter) error
	FindAll(ctx context.Context, dest any, f Filter) error
	Count(ctx context.Context, model any, f Filter) (int64, error)
	Update(ctx context.Context, model any, f Filter, patch Patch) (int64, error)
	Destroy(ctx context.Context, model any, f Filter) (int64, error)
}
