package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

type Company struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	HRUserID           uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null" json:"hr_user_id"`
	HRUser             User               `gorm:"foreignKey:HRUserID" json:"-"`
	Name               string             `gorm:"type:varchar(150);not null" json:"name"`
	Slug               string             `gorm:"type:varchar(170);uniqueIndex;not null" json:"slug"`
	Description        string             `gorm:"type:text" json:"description"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:pending" json:"verification_status"`
	RejectionReason    string             `gorm:"type:text" json:"rejection_reason,omitempty"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	Logo               string             `gorm:"type:varchar(255)" json:"logo,omitempty"`
	Website            string             `gorm:"type:varchar(255)" json:"website,omitempty"`
	Industry           string             `gorm:"type:varchar(100)" json:"industry,omitempty"`
	Size               string             `gorm:"type:varchar(50)" json:"size,omitempty"`
	Headquarters       string             `gorm:"type:varchar(150)" json:"headquarters,omitempty"`
	IsFeatured         bool               `gorm:"default:false" json:"is_featured"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	Jobs []Job `gorm:"foreignKey:CompanyID" json:"-"`
}

func (c *Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
