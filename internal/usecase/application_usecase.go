package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type ApplicationUsecase struct {
	applicationRepo  *repository.ApplicationRepository
	jobRepo          *repository.JobRepository
	companyRepo      *repository.CompanyRepository
	notificationRepo *repository.NotificationRepository
	logger           *zap.Logger
}

func NewApplicationUsecase(
	applicationRepo *repository.ApplicationRepository,
	jobRepo *repository.JobRepository,
	companyRepo *repository.CompanyRepository,
	notificationRepo *repository.NotificationRepository,
	logger *zap.Logger,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		companyRepo:      companyRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// statusRank orders the forward chain pending → reviewed → shortlisted →
// interview → offered → hired. rejected and withdrawn sit outside the chain.
var statusRank = map[model.ApplicationStatus]int{
	model.ApplicationPending:     0,
	model.ApplicationReviewed:    1,
	model.ApplicationShortlisted: 2,
	model.ApplicationInterview:   3,
	model.ApplicationOffered:     4,
	model.ApplicationHired:       5,
}

func isTerminalStatus(s model.ApplicationStatus) bool {
	return s == model.ApplicationHired || s == model.ApplicationRejected || s == model.ApplicationWithdrawn
}

func isKnownTarget(s model.ApplicationStatus) bool {
	if s == model.ApplicationRejected {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// canTransition allows forward moves along the chain (skips permitted) and
// rejection from any non-terminal state. Nothing leaves a terminal state.
func canTransition(from, to model.ApplicationStatus) bool {
	if isTerminalStatus(from) {
		return false
	}
	if to == model.ApplicationRejected {
		return true
	}
	fromRank, okFrom := statusRank[from]
	toRank, okTo := statusRank[to]
	return okFrom && okTo && toRank > fromRank
}

// Apply creates an application for an active job of a verified company.
// Duplicate submissions surface as ErrConflict from the unique index.
func (uc *ApplicationUsecase) Apply(seekerID, jobID uuid.UUID, coverLetter, resumeFile string) (*model.Application, error) {
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusActive || job.Company.VerificationStatus != model.VerificationVerified {
		return nil, apperror.ErrNotFound
	}
	if job.ApplicationDeadline != nil && job.ApplicationDeadline.Before(time.Now()) {
		return nil, apperror.NewValidationError("application deadline has passed",
			map[string]string{"job_id": "this job is no longer accepting applications"})
	}

	app := &model.Application{
		JobID:       jobID,
		SeekerID:    seekerID,
		CoverLetter: coverLetter,
		ResumeFile:  resumeFile,
		Status:      model.ApplicationPending,
		AppliedAt:   time.Now(),
	}
	if err := uc.applicationRepo.Create(app); err != nil {
		return nil, err
	}
	uc.logger.Info("application created",
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("seeker_id", seekerID.String()))
	return app, nil
}

// SetStatus moves an application along the lifecycle. Only the HR user whose
// company owns the job, or an admin, may call it. Re-setting the current
// status is accepted and only refreshes its timestamp; every actual change
// notifies the seeker.
func (uc *ApplicationUsecase) SetStatus(actor model.Principal, id uuid.UUID, status model.ApplicationStatus, notes string) (*model.Application, error) {
	if !isKnownTarget(status) {
		return nil, apperror.NewValidationError("invalid status",
			map[string]string{"status": "status must be one of pending, reviewed, shortlisted, interview, offered, hired, rejected"})
	}
	app, err := uc.applicationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeReview(actor, app); err != nil {
		return nil, err
	}

	if status != app.Status {
		if !canTransition(app.Status, status) {
			return nil, apperror.NewValidationError("invalid status transition",
				map[string]string{"status": fmt.Sprintf("cannot move from %s to %s", app.Status, status)})
		}
	}

	previous := app.Status
	app.Status = status
	if notes != "" {
		app.HRNotes = notes
	}
	stampStatusTimestamp(app, status, time.Now())
	if err := uc.applicationRepo.UpdateStatus(app); err != nil {
		return nil, err
	}

	if status != previous {
		uc.notify(app.SeekerID, model.NotificationApplicationStatus,
			"Application status updated",
			fmt.Sprintf("Your application for %q is now %s", app.Job.Title, status),
			"/applications/"+app.ID.String(),
			map[string]any{"application_id": app.ID, "job_id": app.JobID, "status": status})
		uc.logger.Info("application status changed",
			zap.String("application_id", app.ID.String()),
			zap.String("from", string(previous)),
			zap.String("to", string(status)))
	}
	return app, nil
}

// stampStatusTimestamp records first-touch columns; re-entering a status
// always refreshes its timestamp.
func stampStatusTimestamp(app *model.Application, status model.ApplicationStatus, now time.Time) {
	switch status {
	case model.ApplicationReviewed:
		app.ViewedAt = &now
	case model.ApplicationShortlisted:
		app.ShortlistedAt = &now
	case model.ApplicationInterview:
		app.InterviewAt = &now
	}
}

// Withdraw only succeeds while the application is still pending; anything else
// reports a conflict so callers can tell nothing happened.
func (uc *ApplicationUsecase) Withdraw(id, seekerID uuid.UUID) error {
	withdrawn, err := uc.applicationRepo.Withdraw(id, seekerID)
	if err != nil {
		return err
	}
	if !withdrawn {
		return fmt.Errorf("%w: application can only be withdrawn while pending", apperror.ErrConflict)
	}
	uc.logger.Info("application withdrawn", zap.String("application_id", id.String()))
	return nil
}

// List is role-scoped: a seeker sees their own applications, an HR user sees
// their company's.
func (uc *ApplicationUsecase) List(actor model.Principal, jobID *uuid.UUID) ([]model.Application, error) {
	switch actor.Role {
	case model.RoleSeeker:
		return uc.applicationRepo.ListBySeeker(actor.UserID, jobID)
	case model.RoleHR:
		company, err := uc.companyRepo.FindByHRUser(actor.UserID)
		if err != nil {
			return nil, err
		}
		return uc.applicationRepo.ListByCompany(company.ID, jobID)
	case model.RoleAdmin:
		if jobID == nil {
			return nil, apperror.NewValidationError("job_id is required",
				map[string]string{"job_id": "admin listing requires a job_id filter"})
		}
		job, err := uc.jobRepo.FindByID(*jobID)
		if err != nil {
			return nil, err
		}
		return uc.applicationRepo.ListByCompany(job.CompanyID, jobID)
	default:
		return nil, apperror.ErrForbidden
	}
}

func (uc *ApplicationUsecase) Get(actor model.Principal, id uuid.UUID) (*model.Application, error) {
	app, err := uc.applicationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case model.RoleAdmin:
		return app, nil
	case model.RoleSeeker:
		if app.SeekerID != actor.UserID {
			return nil, apperror.ErrForbidden
		}
		return app, nil
	case model.RoleHR:
		if err := uc.authorizeReview(actor, app); err != nil {
			return nil, err
		}
		return app, nil
	default:
		return nil, apperror.ErrForbidden
	}
}

func (uc *ApplicationUsecase) authorizeReview(actor model.Principal, app *model.Application) error {
	if actor.Role == model.RoleAdmin {
		return nil
	}
	if actor.Role != model.RoleHR {
		return apperror.ErrForbidden
	}
	company, err := uc.companyRepo.FindByHRUser(actor.UserID)
	if err != nil {
		return apperror.ErrForbidden
	}
	if app.Job.CompanyID != company.ID {
		return fmt.Errorf("%w: application belongs to another company", apperror.ErrForbidden)
	}
	return nil
}

func (uc *ApplicationUsecase) notify(userID uuid.UUID, kind, title, message, link string, data map[string]any) {
	payload, err := json.Marshal(data)
	if err != nil {
		uc.logger.Warn("failed to encode notification payload", zap.Error(err))
	}
	n := &model.Notification{
		UserID: userID, Type: kind, Title: title, Message: message, Link: link,
		Data: datatypes.JSON(payload),
	}
	if err := uc.notificationRepo.Create(n); err != nil {
		uc.logger.Warn("failed to create notification", zap.Error(err))
	}
}
