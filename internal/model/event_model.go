package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventConfirmed EventStatus = "confirmed"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventScheduled, EventConfirmed, EventCompleted, EventCancelled:
		return true
	default:
		return false
	}
}

// Event is an interview/calendar entry created by HR for an application.
type Event struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"application_id"`
	Application     Application `gorm:"foreignKey:ApplicationID" json:"-"`
	HRUserID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"hr_user_id"`
	SeekerUserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"seeker_user_id"`
	Title           string      `gorm:"type:varchar(200);not null" json:"title"`
	Type            string      `gorm:"type:varchar(50)" json:"type,omitempty"`
	Date            time.Time   `gorm:"not null" json:"date"`
	DurationMinutes int         `gorm:"default:60" json:"duration_minutes"`
	Timezone        string      `gorm:"type:varchar(50)" json:"timezone,omitempty"`
	Location        string      `gorm:"type:varchar(200)" json:"location,omitempty"`
	MeetingLink     string      `gorm:"type:varchar(255)" json:"meeting_link,omitempty"`
	Notes           string      `gorm:"type:text" json:"notes,omitempty"`
	Status          EventStatus `gorm:"type:varchar(20);default:scheduled" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (e *Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
