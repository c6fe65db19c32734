package repository

import (
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"gorm.io/gorm"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type ListParams struct {
	Status *submission.Status
	Skip   int
	Limit  int
}

// paginate orders newest first; id breaks created_at ties so offsets are
// stable across pages.
func paginate(q *gorm.DB, p ListParams) *gorm.DB {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if p.Skip > 0 {
		q = q.Offset(p.Skip)
	}
	return q.Order("created_at desc").Order("id desc").Limit(limit)
}

// updateColumns writes cols and stamps updated_at; an unknown id yields
// gorm.ErrRecordNotFound.
func updateColumns[T any](db *gorm.DB, id string, cols map[string]any, at time.Time) error {
	cols["updated_at"] = at
	res := db.Model(new(T)).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteByID[T any](db *gorm.DB, id string) error {
	res := db.Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func findByID[T any](db *gorm.DB, id string) (T, error) {
	var v T
	err := db.Where("id = ?", id).First(&v).Error
	return v, err
}
