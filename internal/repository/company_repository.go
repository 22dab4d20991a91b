package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

func (r *CompanyRepository) Create(company *model.Company) error {
	err := r.db.Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrConflict
	}
	return err
}

func (r *CompanyRepository) FindByID(id uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &company, err
}

func (r *CompanyRepository) FindBySlug(slug string) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &company, err
}

func (r *CompanyRepository) FindByHRUser(hrUserID uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "hr_user_id = ?", hrUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &company, err
}

func (r *CompanyRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Company{}).Where("slug = ?", slug).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *CompanyRepository) Update(company *model.Company) error {
	return r.db.Save(company).Error
}

func (r *CompanyRepository) ListByStatus(status model.VerificationStatus, offset, limit int) ([]model.Company, int64, error) {
	var companies []model.Company
	var total int64

	query := r.db.Model(&model.Company{})
	if status != "" {
		query = query.Where("verification_status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&companies).Error
	return companies, total, err
}

// Verify runs the three-part verification cascade in a single transaction:
// mark the company verified, mark the owning HR user verified, and activate
// every draft job of the company. All-or-nothing.
func (r *CompanyRepository) Verify(id uuid.UUID) (*model.Company, error) {
	var company model.Company
	now := time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&company, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}
		company.VerificationStatus = model.VerificationVerified
		company.VerifiedAt = &now
		company.RejectionReason = ""
		if err := tx.Save(&company).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).
			Where("id = ?", company.HRUserID).
			Update("is_verified", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.Job{}).
			Where("company_id = ? AND status = ?", id, model.JobStatusDraft).
			Updates(map[string]any{"status": model.JobStatusActive, "published_at": &now}).Error
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Reject(id uuid.UUID, reason string) (*model.Company, error) {
	var company model.Company
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&company, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}
		company.VerificationStatus = model.VerificationRejected
		company.RejectionReason = reason
		company.VerifiedAt = nil
		return tx.Save(&company).Error
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}
