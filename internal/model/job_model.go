package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationOnsite LocationType = "onsite"
	LocationHybrid LocationType = "hybrid"
)

type Job struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID           uuid.UUID    `gorm:"type:uuid;not null;index" json:"company_id"`
	Company             Company      `gorm:"foreignKey:CompanyID" json:"-"`
	PostedBy            uuid.UUID    `gorm:"type:uuid;not null" json:"posted_by"`
	Title               string       `gorm:"type:varchar(200);not null" json:"title"`
	Slug                string       `gorm:"type:varchar(230);uniqueIndex;not null" json:"slug"`
	Description         string       `gorm:"type:text" json:"description"`
	Requirements        string       `gorm:"type:text" json:"requirements,omitempty"`
	Responsibilities    string       `gorm:"type:text" json:"responsibilities,omitempty"`
	Benefits            string       `gorm:"type:text" json:"benefits,omitempty"`
	Category            string       `gorm:"type:varchar(100);index" json:"category,omitempty"`
	JobType             string       `gorm:"type:varchar(50);index" json:"job_type,omitempty"`
	LocationType        LocationType `gorm:"type:varchar(20)" json:"location_type,omitempty"`
	Location            string       `gorm:"type:varchar(150)" json:"location,omitempty"`
	SalaryMin           int          `json:"salary_min,omitempty"`
	SalaryMax           int          `json:"salary_max,omitempty"`
	Currency            string       `gorm:"type:varchar(10)" json:"currency,omitempty"`
	ShowSalary          bool         `gorm:"default:true" json:"show_salary"`
	ExperienceLevel     string       `gorm:"type:varchar(50)" json:"experience_level,omitempty"`
	SkillsRequired      []string     `gorm:"serializer:json" json:"skills_required,omitempty"`
	ApplicationDeadline *time.Time   `json:"application_deadline,omitempty"`
	PositionsAvailable  int          `gorm:"default:1" json:"positions_available"`
	Status              JobStatus    `gorm:"type:varchar(20);default:draft;index" json:"status"`
	ViewsCount          int          `gorm:"default:0" json:"views_count"`
	ApplicationsCount   int          `gorm:"default:0" json:"applications_count"`
	IsFeatured          bool         `gorm:"default:false" json:"is_featured"`
	PublishedAt         *time.Time   `json:"published_at,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`

	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
