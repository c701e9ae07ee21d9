package repository

import (
	"errors"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByUserID(userID uuid.UUID) (*models.User, error)
	GetByOpenID(openID string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUserID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user_not_found", "user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByOpenID(openID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("open_id = ? AND is_deleted = ?", openID, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user_not_found", "user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.New(apperr.Conflict, "user_exists", "user already exists")
	}
	return err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
