package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterview   ApplicationStatus = "interview"
	ApplicationOffered     ApplicationStatus = "offered"
	ApplicationHired       ApplicationStatus = "hired"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

// Application links one seeker to one job. The composite unique index is the
// authority on "one application per (job, seeker)": duplicate inserts fail at
// the database instead of racing a prior existence check.
type Application struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"job_id"`
	Job           Job               `gorm:"foreignKey:JobID" json:"-"`
	SeekerID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"seeker_id"`
	Seeker        User              `gorm:"foreignKey:SeekerID" json:"-"`
	CoverLetter   string            `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeFile    string            `gorm:"type:varchar(255)" json:"resume_file,omitempty"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:pending;index" json:"status"`
	HRNotes       string            `gorm:"type:text" json:"hr_notes,omitempty"`
	Rating        int               `json:"rating,omitempty"`
	AppliedAt     time.Time         `json:"applied_at"`
	ViewedAt      *time.Time        `json:"viewed_at,omitempty"`
	ShortlistedAt *time.Time        `json:"shortlisted_at,omitempty"`
	InterviewAt   *time.Time        `json:"interview_at,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
