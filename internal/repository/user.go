package repository

import (
	"github.com/linskybing/bootcamp-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	ListUsers(skip, limit int) ([]user.User, error)
	GetUserByID(id string) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	SaveUser(u *user.User) error
	DeleteUser(id string) error
	CountUsers() (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) ListUsers(skip, limit int) ([]user.User, error) {
	var users []user.User
	query := r.db.Model(&user.User{})
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	err := query.Order("created_at asc").Limit(limit).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id string) (user.User, error) {
	var u user.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id string) error {
	return deleteByID[user.User](r.db, id)
}

func (r *DBUserRepo) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Count(&count).Error
	return count, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
