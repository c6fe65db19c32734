package repository

import (
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"gorm.io/gorm"
)

type QuoteRepo interface {
	Create(q *quote.Quote) error
	List(params ListParams) ([]quote.Quote, error)
	FindByID(id string) (quote.Quote, error)
	UpdateStatus(id string, status submission.Status, notes *string, at time.Time) error
	Delete(id string) error
	Count(status *submission.Status) (int64, error)
	WithTx(tx *gorm.DB) QuoteRepo
}

type DBQuoteRepo struct {
	db *gorm.DB
}

func NewQuoteRepo(db *gorm.DB) *DBQuoteRepo {
	return &DBQuoteRepo{
		db: db,
	}
}

func (r *DBQuoteRepo) Create(q *quote.Quote) error {
	return r.db.Create(q).Error
}

func (r *DBQuoteRepo) List(params ListParams) ([]quote.Quote, error) {
	var quotes []quote.Quote
	query := r.db.Model(&quote.Quote{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	err := paginate(query, params).Find(&quotes).Error
	return quotes, err
}

func (r *DBQuoteRepo) FindByID(id string) (quote.Quote, error) {
	return findByID[quote.Quote](r.db, id)
}

// UpdateStatus is the only writer of admin_notes. Nil notes leave the
// stored notes untouched.
func (r *DBQuoteRepo) UpdateStatus(id string, status submission.Status, notes *string, at time.Time) error {
	cols := map[string]any{"status": status}
	if notes != nil {
		cols["admin_notes"] = *notes
	}
	return updateColumns[quote.Quote](r.db, id, cols, at)
}

func (r *DBQuoteRepo) Delete(id string) error {
	return deleteByID[quote.Quote](r.db, id)
}

func (r *DBQuoteRepo) Count(status *submission.Status) (int64, error) {
	var count int64
	query := r.db.Model(&quote.Quote{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *DBQuoteRepo) WithTx(tx *gorm.DB) QuoteRepo {
	if tx == nil {
		return r
	}
	return &DBQuoteRepo{db: tx}
}
