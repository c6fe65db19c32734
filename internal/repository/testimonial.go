package repository

import (
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"gorm.io/gorm"
)

type TestimonialRepo interface {
	Create(t *testimonial.Testimonial) error
	List(params ListParams) ([]testimonial.Testimonial, error)
	FindByID(id string) (testimonial.Testimonial, error)
	UpdateStatus(id string, status submission.Status, at time.Time) error
	Delete(id string) error
	Count(status *submission.Status) (int64, error)
	WithTx(tx *gorm.DB) TestimonialRepo
}

type DBTestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *DBTestimonialRepo {
	return &DBTestimonialRepo{
		db: db,
	}
}

func (r *DBTestimonialRepo) Create(t *testimonial.Testimonial) error {
	return r.db.Create(t).Error
}

func (r *DBTestimonialRepo) List(params ListParams) ([]testimonial.Testimonial, error) {
	var items []testimonial.Testimonial
	query := r.db.Model(&testimonial.Testimonial{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	err := paginate(query, params).Find(&items).Error
	return items, err
}

func (r *DBTestimonialRepo) FindByID(id string) (testimonial.Testimonial, error) {
	return findByID[testimonial.Testimonial](r.db, id)
}

func (r *DBTestimonialRepo) UpdateStatus(id string, status submission.Status, at time.Time) error {
	return updateColumns[testimonial.Testimonial](r.db, id, map[string]any{"status": status}, at)
}

func (r *DBTestimonialRepo) Delete(id string) error {
	return deleteByID[testimonial.Testimonial](r.db, id)
}

func (r *DBTestimonialRepo) Count(status *submission.Status) (int64, error) {
	var count int64
	query := r.db.Model(&testimonial.Testimonial{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *DBTestimonialRepo) WithTx(tx *gorm.DB) TestimonialRepo {
	if tx == nil {
		return r
	}
	return &DBTestimonialRepo{db: tx}
}
