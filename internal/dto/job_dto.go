package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
)

type JobCreateRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description" validate:"required"`
	Requirements        string     `json:"requirements,omitempty"`
	Responsibilities    string     `json:"responsibilities,omitempty"`
	Benefits            string     `json:"benefits,omitempty"`
	Category            string     `json:"category,omitempty" validate:"max=100"`
	JobType             string     `json:"job_type,omitempty" validate:"max=50"`
	LocationType        string     `json:"location_type,omitempty" validate:"omitempty,oneof=remote onsite hybrid"`
	Location            string     `json:"location,omitempty" validate:"max=150"`
	SalaryMin           int        `json:"salary_min,omitempty" validate:"min=0"`
	SalaryMax           int        `json:"salary_max,omitempty" validate:"min=0"`
	Currency            string     `json:"currency,omitempty" validate:"max=10"`
	ShowSalary          *bool      `json:"show_salary,omitempty"`
	ExperienceLevel     string     `json:"experience_level,omitempty" validate:"max=50"`
	SkillsRequired      []string   `json:"skills_required,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	PositionsAvailable  int        `json:"positions_available,omitempty" validate:"min=0"`
	Publish             bool       `json:"publish,omitempty"`
}

func (r *JobCreateRequest) ToModel() *model.Job {
	showSalary := true
	if r.ShowSalary != nil {
		showSalary = *r.ShowSalary
	}
	positions := r.PositionsAvailable
	if positions == 0 {
		positions = 1
	}
	return &model.Job{
		Title:               r.Title,
		Description:         r.Description,
		Requirements:        r.Requirements,
		Responsibilities:    r.Responsibilities,
		Benefits:            r.Benefits,
		Category:            r.Category,
		JobType:             r.JobType,
		LocationType:        model.LocationType(r.LocationType),
		Location:            r.Location,
		SalaryMin:           r.SalaryMin,
		SalaryMax:           r.SalaryMax,
		Currency:            r.Currency,
		ShowSalary:          showSalary,
		ExperienceLevel:     r.ExperienceLevel,
		SkillsRequired:      r.SkillsRequired,
		ApplicationDeadline: r.ApplicationDeadline,
		PositionsAvailable:  positions,
	}
}

// JobUpdateRequest uses pointers so absent fields stay untouched.
type JobUpdateRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description         *string    `json:"description,omitempty"`
	Requirements        *string    `json:"requirements,omitempty"`
	Responsibilities    *string    `json:"responsibilities,omitempty"`
	Benefits            *string    `json:"benefits,omitempty"`
	Category            *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	JobType             *string    `json:"job_type,omitempty" validate:"omitempty,max=50"`
	LocationType        *string    `json:"location_type,omitempty" validate:"omitempty,oneof=remote onsite hybrid"`
	Location            *string    `json:"location,omitempty" validate:"omitempty,max=150"`
	SalaryMin           *int       `json:"salary_min,omitempty"`
	SalaryMax           *int       `json:"salary_max,omitempty"`
	Currency            *string    `json:"currency,omitempty" validate:"omitempty,max=10"`
	ShowSalary          *bool      `json:"show_salary,omitempty"`
	ExperienceLevel     *string    `json:"experience_level,omitempty" validate:"omitempty,max=50"`
	SkillsRequired      []string   `json:"skills_required,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	PositionsAvailable  *int       `json:"positions_available,omitempty"`
}

func (r *JobUpdateRequest) Apply(job *model.Job) {
	if r.Title != nil {
		job.Title = *r.Title
	}
	if r.Description != nil {
		job.Description = *r.Description
	}
	if r.Requirements != nil {
		job.Requirements = *r.Requirements
	}
	if r.Responsibilities != nil {
		job.Responsibilities = *r.Responsibilities
	}
	if r.Benefits != nil {
		job.Benefits = *r.Benefits
	}
	if r.Category != nil {
		job.Category = *r.Category
	}
	if r.JobType != nil {
		job.JobType = *r.JobType
	}
	if r.LocationType != nil {
		job.LocationType = model.LocationType(*r.LocationType)
	}
	if r.Location != nil {
		job.Location = *r.Location
	}
	if r.SalaryMin != nil {
		job.SalaryMin = *r.SalaryMin
	}
	if r.SalaryMax != nil {
		job.SalaryMax = *r.SalaryMax
	}
	if r.Currency != nil {
		job.Currency = *r.Currency
	}
	if r.ShowSalary != nil {
		job.ShowSalary = *r.ShowSalary
	}
	if r.ExperienceLevel != nil {
		job.ExperienceLevel = *r.ExperienceLevel
	}
	if r.SkillsRequired != nil {
		job.SkillsRequired = r.SkillsRequired
	}
	if r.ApplicationDeadline != nil {
		job.ApplicationDeadline = r.ApplicationDeadline
	}
	if r.PositionsAvailable != nil {
		job.PositionsAvailable = *r.PositionsAvailable
	}
}

// JobDTO is the public job shape. Salary fields are blanked when the poster
// chose not to show them.
type JobDTO struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Slug                string     `json:"slug"`
	CompanyName         string     `json:"company_name,omitempty"`
	CompanySlug         string     `json:"company_slug,omitempty"`
	CompanyLogo         string     `json:"company_logo,omitempty"`
	Description         string     `json:"description"`
	Requirements        string     `json:"requirements,omitempty"`
	Responsibilities    string     `json:"responsibilities,omitempty"`
	Benefits            string     `json:"benefits,omitempty"`
	Category            string     `json:"category,omitempty"`
	JobType             string     `json:"job_type,omitempty"`
	LocationType        string     `json:"location_type,omitempty"`
	Location            string     `json:"location,omitempty"`
	SalaryMin           int        `json:"salary_min,omitempty"`
	SalaryMax           int        `json:"salary_max,omitempty"`
	Currency            string     `json:"currency,omitempty"`
	ExperienceLevel     string     `json:"experience_level,omitempty"`
	SkillsRequired      []string   `json:"skills_required,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	PositionsAvailable  int        `json:"positions_available"`
	Status              string     `json:"status"`
	ViewsCount          int        `json:"views_count"`
	ApplicationsCount   int        `json:"applications_count"`
	IsFeatured          bool       `json:"is_featured"`
	PublishedAt         *time.Time `json:"published_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func NewJobDTO(j *model.Job) JobDTO {
	d := JobDTO{
		ID:                  j.ID,
		Title:               j.Title,
		Slug:                j.Slug,
		CompanyName:         j.Company.Name,
		CompanySlug:         j.Company.Slug,
		CompanyLogo:         j.Company.Logo,
		Description:         j.Description,
		Requirements:        j.Requirements,
		Responsibilities:    j.Responsibilities,
		Benefits:            j.Benefits,
		Category:            j.Category,
		JobType:             j.JobType,
		LocationType:        string(j.LocationType),
		Location:            j.Location,
		ExperienceLevel:     j.ExperienceLevel,
		SkillsRequired:      j.SkillsRequired,
		ApplicationDeadline: j.ApplicationDeadline,
		PositionsAvailable:  j.PositionsAvailable,
		Status:              string(j.Status),
		ViewsCount:          j.ViewsCount,
		ApplicationsCount:   j.ApplicationsCount,
		IsFeatured:          j.IsFeatured,
		PublishedAt:         j.PublishedAt,
		CreatedAt:           j.CreatedAt,
	}
	if j.ShowSalary {
		d.SalaryMin = j.SalaryMin
		d.SalaryMax = j.SalaryMax
		d.Currency = j.Currency
	}
	return d
}

func NewJobDTOs(jobs []model.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobDTO(&jobs[i]))
	}
	return out
}
