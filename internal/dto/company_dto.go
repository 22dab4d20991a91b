package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
)

type CompanyUpdateRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=150"`
	Description  *string `json:"description,omitempty"`
	Website      *string `json:"website,omitempty" validate:"omitempty,max=255"`
	Industry     *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Size         *string `json:"size,omitempty" validate:"omitempty,max=50"`
	Headquarters *string `json:"headquarters,omitempty" validate:"omitempty,max=150"`
}

func (r *CompanyUpdateRequest) Apply(c *model.Company) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.Website != nil {
		c.Website = *r.Website
	}
	if r.Industry != nil {
		c.Industry = *r.Industry
	}
	if r.Size != nil {
		c.Size = *r.Size
	}
	if r.Headquarters != nil {
		c.Headquarters = *r.Headquarters
	}
}

type CompanyRejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CompanyDTO struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	Description        string     `json:"description,omitempty"`
	VerificationStatus string     `json:"verification_status"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	Logo               string     `json:"logo,omitempty"`
	Website            string     `json:"website,omitempty"`
	Industry           string     `json:"industry,omitempty"`
	Size               string     `json:"size,omitempty"`
	Headquarters       string     `json:"headquarters,omitempty"`
	IsFeatured         bool       `json:"is_featured"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewCompanyDTO(c *model.Company) CompanyDTO {
	return CompanyDTO{
		ID:                 c.ID,
		Name:               c.Name,
		Slug:               c.Slug,
		Description:        c.Description,
		VerificationStatus: string(c.VerificationStatus),
		RejectionReason:    c.RejectionReason,
		VerifiedAt:         c.VerifiedAt,
		Logo:               c.Logo,
		Website:            c.Website,
		Industry:           c.Industry,
		Size:               c.Size,
		Headquarters:       c.Headquarters,
		IsFeatured:         c.IsFeatured,
		CreatedAt:          c.CreatedAt,
	}
}

func NewCompanyDTOs(companies []model.Company) []CompanyDTO {
	out := make([]CompanyDTO, 0, len(companies))
	for i := range companies {
		out = append(out, NewCompanyDTO(&companies[i]))
	}
	return out
}
