package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
	"gorm.io/gorm"
)

type SavedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) *SavedJobRepository {
	return &SavedJobRepository{db}
}

// Save is idempotent: saving an already-saved job hits the unique pair index
// and is treated as success.
func (r *SavedJobRepository) Save(userID, jobID uuid.UUID) error {
	err := r.db.Create(&model.SavedJob{UserID: userID, JobID: jobID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *SavedJobRepository) Unsave(userID, jobID uuid.UUID) (bool, error) {
	result := r.db.Delete(&model.SavedJob{}, "user_id = ? AND job_id = ?", userID, jobID)
	return result.RowsAffected > 0, result.Error
}

func (r *SavedJobRepository) IsSaved(userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *SavedJobRepository) List(userID uuid.UUID) ([]model.SavedJob, error) {
	var saved []model.SavedJob
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).Order("saved_at DESC").Find(&saved).Error
	return saved, err
}
