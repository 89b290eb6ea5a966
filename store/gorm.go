package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore implements Store on a GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) scope(ctx context.Context, f Filter) *gorm.DB {
	tx := s.db.WithContext(ctx)
	if f != nil {
		tx = tx.Where(f.Expression())
	}
	return tx
}

func (s *GormStore) Create(ctx context.Context, entity any) error {
	return s.db.WithContext(ctx).Create(entity).Error
}

func (s *GormStore) FindOne(ctx context.Context, dest any, f Filter) error {
	err := s.scope(ctx, f).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) FindAll(ctx context.Context, dest any, f Filter) error {
	return s.scope(ctx, f).Find(dest).Error
}

func (s *GormStore) Count(ctx context.Context, model any, f Filter) (int64, error) {
	var n int64
	err := s.scope(ctx, f).Model(model).Count(&n).Error
	return n, err
}

func (s *GormStore) Update(ctx context.Context, model any, f Filter, patch Patch) (int64, error) {
	vals := make(map[string]any, len(patch))
	for col, v := range patch {
		if incr, ok := v.(IncrValue); ok {
			vals[col] = gorm.Expr(fmt.Sprintf("%s + ?", col), incr.Delta)
			continue
		}
		vals[col] = v
	}
	res := s.scope(ctx, f).Model(model).Updates(vals)
	return res.RowsAffected, res.Error
}

func (s *GormStore) Destroy(ctx context.Context, model any, f Filter) (int64, error) {
	res := s.scope(ctx, f).Delete(model)
	return res.RowsAffected, res.Error
}
