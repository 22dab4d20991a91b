package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
)

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty"`
}

type ApplicationDTO struct {
	ID            uuid.UUID  `json:"id"`
	JobID         uuid.UUID  `json:"job_id"`
	JobTitle      string     `json:"job_title,omitempty"`
	JobSlug       string     `json:"job_slug,omitempty"`
	CompanyName   string     `json:"company_name,omitempty"`
	SeekerID      uuid.UUID  `json:"seeker_id"`
	SeekerName    string     `json:"seeker_name,omitempty"`
	SeekerEmail   string     `json:"seeker_email,omitempty"`
	CoverLetter   string     `json:"cover_letter,omitempty"`
	ResumeFile    string     `json:"resume_file,omitempty"`
	Status        string     `json:"status"`
	HRNotes       string     `json:"hr_notes,omitempty"`
	Rating        int        `json:"rating,omitempty"`
	AppliedAt     time.Time  `json:"applied_at"`
	ViewedAt      *time.Time `json:"viewed_at,omitempty"`
	ShortlistedAt *time.Time `json:"shortlisted_at,omitempty"`
	InterviewAt   *time.Time `json:"interview_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewApplicationDTO(a *model.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:            a.ID,
		JobID:         a.JobID,
		JobTitle:      a.Job.Title,
		JobSlug:       a.Job.Slug,
		CompanyName:   a.Job.Company.Name,
		SeekerID:      a.SeekerID,
		SeekerName:    a.Seeker.Name,
		SeekerEmail:   a.Seeker.Email,
		CoverLetter:   a.CoverLetter,
		ResumeFile:    a.ResumeFile,
		Status:        string(a.Status),
		HRNotes:       a.HRNotes,
		Rating:        a.Rating,
		AppliedAt:     a.AppliedAt,
		ViewedAt:      a.ViewedAt,
		ShortlistedAt: a.ShortlistedAt,
		InterviewAt:   a.InterviewAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func NewApplicationDTOs(apps []model.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationDTO(&apps[i]))
	}
	return out
}
