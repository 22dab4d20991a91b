package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedJob struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`
	Job     Job       `gorm:"foreignKey:JobID" json:"job,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

func (s *SavedJob) TableName() string {
	return "saved_jobs"
}

func (s *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}
	return nil
}
