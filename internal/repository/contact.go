package repository

import (
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"gorm.io/gorm"
)

type ContactRepo interface {
	Create(c *contact.Contact) error
	List(params ListParams) ([]contact.Contact, error)
	FindByID(id string) (contact.Contact, error)
	MarkRead(id string, at time.Time) error
	Delete(id string) error
	Count(status *submission.Status) (int64, error)
	WithTx(tx *gorm.DB) ContactRepo
}

type DBContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *DBContactRepo {
	return &DBContactRepo{
		db: db,
	}
}

func (r *DBContactRepo) Create(c *contact.Contact) error {
	return r.db.Create(c).Error
}

func byReadStatus(query *gorm.DB, status *submission.Status) *gorm.DB {
	if status == nil {
		return query
	}
	return query.Where("is_read = ?", *status == contact.StatusRead)
}

func (r *DBContactRepo) List(params ListParams) ([]contact.Contact, error) {
	var contacts []contact.Contact
	query := byReadStatus(r.db.Model(&contact.Contact{}), params.Status)
	err := paginate(query, params).Find(&contacts).Error
	return contacts, err
}

func (r *DBContactRepo) FindByID(id string) (contact.Contact, error) {
	return findByID[contact.Contact](r.db, id)
}

func (r *DBContactRepo) MarkRead(id string, at time.Time) error {
	return updateColumns[contact.Contact](r.db, id, map[string]any{"is_read": true}, at)
}

func (r *DBContactRepo) Delete(id string) error {
	return deleteByID[contact.Contact](r.db, id)
}

func (r *DBContactRepo) Count(status *submission.Status) (int64, error) {
	var count int64
	err := byReadStatus(r.db.Model(&contact.Contact{}), status).Count(&count).Error
	return count, err
}

func (r *DBContactRepo) WithTx(tx *gorm.DB) ContactRepo {
	if tx == nil {
		return r
	}
	return &DBContactRepo{db: tx}
}
