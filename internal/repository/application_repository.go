package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// Create inserts the application and bumps the job's applications_count in the
// same transaction. A duplicate (job, seeker) pair trips the composite unique
// index and comes back as ErrConflict; the index, not a prior SELECT, is what
// makes concurrent duplicate submissions lose.
func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.ErrConflict
			}
			return err
		}
		return tx.Model(&model.Job{}).Where("id = ?", app.JobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
	})
}

func (r *ApplicationRepository) FindByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.Preload("Job").Preload("Job.Company").Preload("Seeker").First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &app, err
}

func (r *ApplicationRepository) ListBySeeker(seekerID uuid.UUID, jobID *uuid.UUID) ([]model.Application, error) {
	query := r.db.Preload("Job").Preload("Job.Company").Where("seeker_id = ?", seekerID)
	if jobID != nil {
		query = query.Where("job_id = ?", *jobID)
	}
	var apps []model.Application
	err := query.Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) ListByCompany(companyID uuid.UUID, jobID *uuid.UUID) ([]model.Application, error) {
	query := r.db.Preload("Job").Preload("Job.Company").Preload("Seeker").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID)
	if jobID != nil {
		query = query.Where("applications.job_id = ?", *jobID)
	}
	var apps []model.Application
	err := query.Order("applications.applied_at DESC").Find(&apps).Error
	return apps, err
}

// UpdateStatus persists a status change together with the stamped timestamp
// columns already set on the model by the usecase.
func (r *ApplicationRepository) UpdateStatus(app *model.Application) error {
	return r.db.Model(app).Select("status", "hr_notes", "viewed_at", "shortlisted_at", "interview_at").Updates(app).Error
}

// Withdraw is a conditional UPDATE gated on ownership and the current status
// being exactly pending. It reports whether a row actually changed; when it
// did, the job's applications_count is decremented in the same transaction.
func (r *ApplicationRepository) Withdraw(id, seekerID uuid.UUID) (bool, error) {
	withdrawn := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var app model.Application
		if err := tx.First(&app, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}
		result := tx.Model(&model.Application{}).
			Where("id = ? AND seeker_id = ? AND status = ?", id, seekerID, model.ApplicationPending).
			Update("status", model.ApplicationWithdrawn)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		withdrawn = true
		return tx.Model(&model.Job{}).Where("id = ?", app.JobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count - 1")).Error
	})
	return withdrawn, err
}
