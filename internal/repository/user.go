package repository

import (
	"errors"
	"fmt"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user model.User) (model.User, error)
	GetByID(id uint) (model.User, error)
	Save(user model.User) (model.User, error)
	DeleteByID(id uint) error
}

type user struct {
	db *gorm.DB
}

func newUserRepository(db *gorm.DB) UserRepository {
	return &user{
		db: db,
	}
}

func (u *user) Create(user model.User) (model.User, error) {
	result := u.db.Create(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) GetByID(id uint) (model.User, error) {
	var user model.User
	result := u.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: user %d", dto.ErrNotFound, id)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) Save(user model.User) (model.User, error) {
	result := u.db.Save(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) DeleteByID(id uint) error {
	result := u.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}
