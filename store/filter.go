package store

import (
	"reflect"
	"time"

	"gorm.io/gorm/clause"
)

// Filter is a structured predicate over column names. It compiles to a
// SQL expression for the GORM store and evaluates directly against a
// Record for the in-memory store, so the same filter value drives both
// backends.
type Filter interface {
	Expression() clause.Expression
	Matches(rec Record) bool
}

// Record exposes a row's value for a given column name.
type Record interface {
	Column(name string) (any, bool)
}

type condOp int

const (
	opEq condOp = iota
	opNe
	opIn
)

type cond struct {
	column string
	op     condOp
	value  any
}

// Eq matches rows whose column equals value.
func Eq(column string, value any) Filter { return cond{column: column, op: opEq, value: value} }

// Ne matches rows whose column does not equal value.
func Ne(column string, value any) Filter { return cond{column: column, op: opNe, value: value} }

// In matches rows whose column equals any element of values (a slice).
func In(column string, values any) Filter { return cond{column: column, op: opIn, value: values} }

func (c cond) Expression() clause.Expression {
	col := clause.Column{Name: c.column}
	switch c.op {
	case opNe:
		return clause.Neq{Column: col, Value: c.value}
	case opIn:
		return clause.IN{Column: col, Values: toAnySlice(c.value)}
	default:
		return clause.Eq{Column: col, Value: c.value}
	}
}

func (c cond) Matches(rec Record) bool {
	got, ok := rec.Column(c.column)
	if !ok {
		return false
	}
	switch c.op {
	case opNe:
		return !valuesEqual(got, c.value)
	case opIn:
		for _, v := range toAnySlice(c.value) {
			if valuesEqual(got, v) {
				return true
			}
		}
		return false
	default:
		return valuesEqual(got, c.value)
	}
}

type group struct {
	or      bool
	filters []Filter
}

// And matches rows satisfying every child filter.
func And(filters ...Filter) Filter { return group{filters: filters} }

// Or matches rows satisfying at least one child filter.
func Or(filters ...Filter) Filter { return group{or: true, filters: filters} }

func (g group) Expression() clause.Expression {
	exprs := make([]clause.Expression, 0, len(g.filters))
	for _, f := range g.filters {
		exprs = append(exprs, f.Expression())
	}
	if g.or {
		return clause.Or(exprs...)
	}
	return clause.And(exprs...)
}

func (g group) Matches(rec Record) bool {
	if g.or {
		for _, f := range g.filters {
			if f.Matches(rec) {
				return true
			}
		}
		return false
	}
	for _, f := range g.filters {
		if !f.Matches(rec) {
			return false
		}
	}
	return true
}

func toAnySlice(v any) []any {
	if v == nil {
		return nil
	}
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// valuesEqual compares a stored value against a filter value, deref'ing
// pointers and normalizing numeric widths so int and int64 compare
// equal.
func valuesEqual(a, b any) bool {
	a = deref(a)
	b = deref(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if isInt(av) && isInt(bv) {
		return av.Int() == bv.Int()
	}
	if av.Kind() == reflect.Float64 || av.Kind() == reflect.Float32 {
		if bv.Kind() == reflect.Float64 || bv.Kind() == reflect.Float32 {
			return av.Float() == bv.Float()
		}
	}
	return a == b
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return v
}
