package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db}
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) FindByID(id uuid.UUID) (*model.Event, error) {
	var event model.Event
	err := r.db.First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &event, err
}

// ListForUser returns events where the user is either side of the interview.
func (r *EventRepository) ListForUser(userID uuid.UUID) ([]model.Event, error) {
	var events []model.Event
	err := r.db.Where("hr_user_id = ? OR seeker_user_id = ?", userID, userID).
		Order("date ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) UpdateStatus(id uuid.UUID, status model.EventStatus) (bool, error) {
	result := r.db.Model(&model.Event{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected > 0, result.Error
}
