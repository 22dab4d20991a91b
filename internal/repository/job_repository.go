package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// JobSearchParams are the optional public-search filters, combined with AND.
type JobSearchParams struct {
	Search          string
	Category        string
	JobType         string
	LocationType    string
	ExperienceLevel string
	SalaryMin       int
	SalaryMax       int
	Sort            string
	Offset          int
	Limit           int
}

func (r *JobRepository) Create(job *model.Job) error {
	err := r.db.Create(job).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrConflict
	}
	return err
}

func (r *JobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) FindByID(id uuid.UUID) (*model.Job, error) {
	var job model.Job
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &job, err
}

func (r *JobRepository) FindBySlug(slug string) (*model.Job, error) {
	var job model.Job
	err := r.db.Preload("Company").First(&job, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &job, err
}

func (r *JobRepository) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&model.Job{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *JobRepository) ListByCompany(companyID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// Search returns active jobs of verified companies only; jobs of pending or
// rejected companies never reach public results.
func (r *JobRepository) Search(params JobSearchParams) ([]model.Job, int64, error) {
	query := r.db.Model(&model.Job{}).
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.status = ?", model.JobStatusActive).
		Where("companies.verification_status = ?", model.VerificationVerified)

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("jobs.title LIKE ? OR jobs.description LIKE ?", like, like)
	}
	if params.Category != "" {
		query = query.Where("jobs.category = ?", params.Category)
	}
	if params.JobType != "" {
		query = query.Where("jobs.job_type = ?", params.JobType)
	}
	if params.LocationType != "" {
		query = query.Where("jobs.location_type = ?", params.LocationType)
	}
	if params.ExperienceLevel != "" {
		query = query.Where("jobs.experience_level = ?", params.ExperienceLevel)
	}
	if params.SalaryMin > 0 {
		query = query.Where("jobs.salary_max >= ?", params.SalaryMin)
	}
	if params.SalaryMax > 0 {
		query = query.Where("jobs.salary_min <= ?", params.SalaryMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch params.Sort {
	case "salary":
		query = query.Order("jobs.is_featured DESC, jobs.salary_max DESC")
	case "oldest":
		query = query.Order("jobs.is_featured DESC, jobs.published_at ASC")
	default:
		query = query.Order("jobs.is_featured DESC, jobs.published_at DESC")
	}

	var jobs []model.Job
	err := query.Preload("Company").Offset(params.Offset).Limit(params.Limit).Find(&jobs).Error
	return jobs, total, err
}
