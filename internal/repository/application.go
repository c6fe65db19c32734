package repository

import (
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	Create(app *application.Application) error
	List(params ListParams) ([]application.Application, error)
	FindByID(id string) (application.Application, error)
	ExistsByEmail(email string) (bool, error)
	UpdateStatus(id string, status submission.Status, at time.Time) error
	Delete(id string) error
	Count(status *submission.Status) (int64, error)
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{
		db: db,
	}
}

func (r *DBApplicationRepo) Create(app *application.Application) error {
	return r.db.Create(app).Error
}

func (r *DBApplicationRepo) List(params ListParams) ([]application.Application, error) {
	var apps []application.Application
	query := r.db.Model(&application.Application{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	err := paginate(query, params).Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) FindByID(id string) (application.Application, error) {
	return findByID[application.Application](r.db, id)
}

func (r *DBApplicationRepo) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&application.Application{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *DBApplicationRepo) UpdateStatus(id string, status submission.Status, at time.Time) error {
	return updateColumns[application.Application](r.db, id, map[string]any{"status": status}, at)
}

func (r *DBApplicationRepo) Delete(id string) error {
	return deleteByID[application.Application](r.db, id)
}

func (r *DBApplicationRepo) Count(status *submission.Status) (int64, error) {
	var count int64
	query := r.db.Model(&application.Application{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
