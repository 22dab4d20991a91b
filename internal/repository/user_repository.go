package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(user *model.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrConflict
	}
	return err
}

// CreateWithCompany inserts an HR user and their pending company in one
// transaction, so a failed company insert leaves no orphaned account behind.
func (r *UserRepository) CreateWithCompany(user *model.User, company *model.Company) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		company.HRUserID = user.ID
		return tx.Create(company).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrConflict
	}
	return err
}

func (r *UserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &user, err
}

func (r *UserRepository) UpdateLastLogin(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("last_login", &now).Error
}

func (r *UserRepository) UpdateAvatar(id uuid.UUID, avatar string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("avatar", avatar).Error
}

// DeleteAccount hard-deletes the user together with their dependent rows.
func (r *UserRepository) DeleteAccount(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Application{}, "seeker_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.SavedJob{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Notification{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.ErrNotFound
		}
		return nil
	})
}
