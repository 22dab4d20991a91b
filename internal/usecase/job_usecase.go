package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/jobnexus/backend/internal/util"
	"go.uber.org/zap"
)

type JobUsecase struct {
	jobRepo     *repository.JobRepository
	companyRepo *repository.CompanyRepository
	logger      *zap.Logger
}

func NewJobUsecase(jobRepo *repository.JobRepository, companyRepo *repository.CompanyRepository, logger *zap.Logger) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, companyRepo: companyRepo, logger: logger}
}

// Create posts a job for the HR user's company. Jobs of an unverified company
// always start as drafts; a verified company may publish immediately. The
// verification cascade is the only other path to active.
func (uc *JobUsecase) Create(hrUserID uuid.UUID, job *model.Job, publish bool) (*model.Job, error) {
	company, err := uc.companyRepo.FindByHRUser(hrUserID)
	if err != nil {
		return nil, err
	}
	job.CompanyID = company.ID
	job.PostedBy = hrUserID
	job.Slug = util.JobSlug(job.Title)
	job.Status = model.JobStatusDraft
	if publish && company.VerificationStatus == model.VerificationVerified {
		now := time.Now()
		job.Status = model.JobStatusActive
		job.PublishedAt = &now
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}
	uc.logger.Info("job created",
		zap.String("job_id", job.ID.String()),
		zap.String("company_id", company.ID.String()),
		zap.String("status", string(job.Status)))
	return job, nil
}

// Update edits a job owned by the HR user's company.
func (uc *JobUsecase) Update(hrUserID, jobID uuid.UUID, apply func(*model.Job)) (*model.Job, error) {
	job, err := uc.ownJob(hrUserID, jobID)
	if err != nil {
		return nil, err
	}
	apply(job)
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Publish moves an owned draft job to active; requires a verified company.
func (uc *JobUsecase) Publish(hrUserID, jobID uuid.UUID) (*model.Job, error) {
	job, err := uc.ownJob(hrUserID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Company.VerificationStatus != model.VerificationVerified {
		return nil, apperror.NewValidationError("company is not verified",
			map[string]string{"company": "jobs can only be published after verification"})
	}
	if job.Status != model.JobStatusDraft {
		return nil, apperror.NewValidationError("only draft jobs can be published",
			map[string]string{"status": "job is not a draft"})
	}
	now := time.Now()
	job.Status = model.JobStatusActive
	job.PublishedAt = &now
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Close ends an owned job listing.
func (uc *JobUsecase) Close(hrUserID, jobID uuid.UUID) (*model.Job, error) {
	job, err := uc.ownJob(hrUserID, jobID)
	if err != nil {
		return nil, err
	}
	job.Status = model.JobStatusClosed
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetPublic fetches a job by slug for public viewing and counts the view.
// Jobs outside active/verified are invisible to the public.
func (uc *JobUsecase) GetPublic(slug string) (*model.Job, error) {
	job, err := uc.jobRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusActive || job.Company.VerificationStatus != model.VerificationVerified {
		return nil, apperror.ErrNotFound
	}
	if err := uc.jobRepo.IncrementViews(job.ID); err != nil {
		uc.logger.Warn("failed to count job view", zap.Error(err))
	}
	return job, nil
}

func (uc *JobUsecase) ListOwn(hrUserID uuid.UUID) ([]model.Job, error) {
	company, err := uc.companyRepo.FindByHRUser(hrUserID)
	if err != nil {
		return nil, err
	}
	return uc.jobRepo.ListByCompany(company.ID)
}

// Search runs the public filtered listing. Only active jobs of verified
// companies are reachable; the repository enforces the join condition.
func (uc *JobUsecase) Search(params repository.JobSearchParams, page, perPage int) ([]model.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	params.Offset = (page - 1) * perPage
	params.Limit = perPage
	return uc.jobRepo.Search(params)
}

func (uc *JobUsecase) ownJob(hrUserID, jobID uuid.UUID) (*model.Job, error) {
	company, err := uc.companyRepo.FindByHRUser(hrUserID)
	if err != nil {
		return nil, err
	}
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != company.ID {
		return nil, apperror.ErrForbidden
	}
	return job, nil
}
