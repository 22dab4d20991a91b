package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
)

type EventCreateRequest struct {
	ApplicationID   uuid.UUID `json:"application_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=200"`
	Type            string    `json:"type,omitempty" validate:"omitempty,max=50"`
	Date            time.Time `json:"date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes,omitempty" validate:"omitempty,min=5,max=480"`
	Timezone        string    `json:"timezone,omitempty" validate:"omitempty,max=50"`
	Location        string    `json:"location,omitempty" validate:"omitempty,max=200"`
	MeetingLink     string    `json:"meeting_link,omitempty" validate:"omitempty,max=255"`
	Notes           string    `json:"notes,omitempty"`
}

func (r *EventCreateRequest) ToModel() *model.Event {
	duration := r.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	return &model.Event{
		ApplicationID:   r.ApplicationID,
		Title:           r.Title,
		Type:            r.Type,
		Date:            r.Date,
		DurationMinutes: duration,
		Timezone:        r.Timezone,
		Location:        r.Location,
		MeetingLink:     r.MeetingLink,
		Notes:           r.Notes,
	}
}

type EventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
}
