package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// MemoryStore implements Store entirely in memory, keyed by model
// type. The test suite runs the auth service and cascade resolver
// against it; the seeder can run against it for dry runs. Column names
// in filters and patches use the database (snake_case) form and are
// resolved to struct fields case-insensitively.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[reflect.Type][]reflect.Value // pointers to struct copies
	seq    map[reflect.Type]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[reflect.Type][]reflect.Value),
		seq:    make(map[reflect.Type]int64),
	}
}

func (m *MemoryStore) Create(_ context.Context, entity any) error {
	rv := reflect.ValueOf(entity)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("store: Create requires a pointer to struct, got %T", entity)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	elem := rv.Elem()
	t := elem.Type()
	if id := elem.FieldByName("ID"); id.IsValid() && id.Kind() == reflect.Int {
		if id.Int() == 0 {
			m.seq[t]++
			id.SetInt(m.seq[t])
		} else if id.Int() > m.seq[t] {
			m.seq[t] = id.Int()
		}
	}

	row := reflect.New(t)
	row.Elem().Set(elem)
	m.tables[t] = append(m.tables[t], row)
	return nil
}

func (m *MemoryStore) FindOne(_ context.Context, dest any, f Filter) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("store: FindOne requires a pointer to struct, got %T", dest)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	t := rv.Elem().Type()
	for _, row := range m.tables[t] {
		if f == nil || f.Matches(recordOf(row.Elem())) {
			rv.Elem().Set(row.Elem())
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) FindAll(_ context.Context, dest any, f Filter) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: FindAll requires a pointer to slice, got %T", dest)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sliceVal := rv.Elem()
	t := sliceVal.Type().Elem()
	out := reflect.MakeSlice(sliceVal.Type(), 0, 0)
	for _, row := range m.tables[t] {
		if f == nil || f.Matches(recordOf(row.Elem())) {
			out = reflect.Append(out, row.Elem())
		}
	}
	sliceVal.Set(out)
	return nil
}

func (m *MemoryStore) Count(_ context.Context, model any, f Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, row := range m.tables[modelType(model)] {
		if f == nil || f.Matches(recordOf(row.Elem())) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) Update(_ context.Context, model any, f Filter, patch Patch) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := modelType(model)
	fields := fieldsOf(t)
	var n int64
	for _, row := range m.tables[t] {
		if f != nil && !f.Matches(recordOf(row.Elem())) {
			continue
		}
		for col, v := range patch {
			idx, ok := fields[normalizeColumn(col)]
			if !ok {
				return n, fmt.Errorf("store: unknown column %q on %s", col, t.Name())
			}
			field := row.Elem().Field(idx)
			if incr, ok := v.(IncrValue); ok {
				field.SetInt(field.Int() + int64(incr.Delta))
				continue
			}
			if err := setField(field, v); err != nil {
				return n, fmt.Errorf("store: column %q on %s: %w", col, t.Name(), err)
			}
		}
		n++
	}
	return n, nil
}

func (m *MemoryStore) Destroy(_ context.Context, model any, f Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := modelType(model)
	kept := m.tables[t][:0]
	var n int64
	for _, row := range m.tables[t] {
		if f == nil || f.Matches(recordOf(row.Elem())) {
			n++
			continue
		}
		kept = append(kept, row)
	}
	m.tables[t] = kept
	return n, nil
}

func modelType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// ════════════════════════════════════════════════════════════
// Column resolution
// ════════════════════════════════════════════════════════════

var fieldCache sync.Map // reflect.Type -> map[string]int

// normalizeColumn folds "login_retry_limit" and "LoginRetryLimit" to
// the same key.
func normalizeColumn(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

func fieldsOf(t reflect.Type) map[string]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]int)
	}
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields[normalizeColumn(t.Field(i).Name)] = i
	}
	fieldCache.Store(t, fields)
	return fields
}

type structRecord struct {
	v      reflect.Value
	fields map[string]int
}

func recordOf(v reflect.Value) Record {
	return structRecord{v: v, fields: fieldsOf(v.Type())}
}

func (r structRecord) Column(name string) (any, bool) {
	idx, ok := r.fields[normalizeColumn(name)]
	if !ok {
		return nil, false
	}
	return r.v.Field(idx).Interface(), true
}

func setField(field reflect.Value, v any) error {
	if v == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case field.Kind() == reflect.Ptr && rv.Type().AssignableTo(field.Type().Elem()):
		p := reflect.New(field.Type().Elem())
		p.Elem().Set(rv)
		field.Set(p)
	case rv.Type().ConvertibleTo(field.Type()):
		field.Set(rv.Convert(field.Type()))
	default:
		return fmt.Errorf("cannot assign %T", v)
	}
	return nil
}
