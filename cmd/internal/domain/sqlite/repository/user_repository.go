package repository

import (
	"errors"
	"smartnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindActiveByID(id int64) (*entity.User, error) {
	return u.findOne("id = ? AND active = ?", id, true)
}

func (u *DefaultUserRepository) FindActiveByEmail(email string) (*entity.User, error) {
	return u.findOne("email = ? AND active = ?", email, true)
}

func (u *DefaultUserRepository) FindActiveBySub(sub string) (*entity.User, error) {
	return u.findOne("sub_uuid = ? AND active = ?", sub, true)
}

func (u *DefaultUserRepository) ExistsActiveByEmail(email string) (bool, error) {
	var exists int
	err := u.db.
		Raw("SELECT EXISTS(SELECT 1 FROM users WHERE email = ? AND active = ?)", email, true).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (u *DefaultUserRepository) Save(user *entity.User) error {
	return u.db.Save(user).Error
}

func (u *DefaultUserRepository) findOne(query string, args ...any) (*entity.User, error) {
	var user entity.User
	err := u.db.Where(query, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}
