package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type EventUsecase struct {
	eventRepo        *repository.EventRepository
	notificationRepo *repository.NotificationRepository
	applications     *ApplicationUsecase
	logger           *zap.Logger
}

func NewEventUsecase(eventRepo *repository.EventRepository, notificationRepo *repository.NotificationRepository, applications *ApplicationUsecase, logger *zap.Logger) *EventUsecase {
	return &EventUsecase{eventRepo: eventRepo, notificationRepo: notificationRepo, applications: applications, logger: logger}
}

// ScheduleInterview creates an interview event for an application of the HR
// user's company. The application is driven into interview status through the
// regular state machine, so scheduling against a terminal application fails.
func (uc *EventUsecase) ScheduleInterview(actor model.Principal, event *model.Event) (*model.Event, error) {
	app, err := uc.applications.SetStatus(actor, event.ApplicationID, model.ApplicationInterview, "")
	if err != nil {
		return nil, err
	}

	event.HRUserID = actor.UserID
	event.SeekerUserID = app.SeekerID
	event.Status = model.EventScheduled
	if event.Type == "" {
		event.Type = "interview"
	}
	if err := uc.eventRepo.Create(event); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]any{
		"event_id":       event.ID,
		"application_id": event.ApplicationID,
		"date":           event.Date,
	})
	if err != nil {
		uc.logger.Warn("failed to encode notification payload", zap.Error(err))
	}
	n := &model.Notification{
		UserID:  app.SeekerID,
		Type:    model.NotificationInterviewEvent,
		Title:   "Interview scheduled",
		Message: fmt.Sprintf("An interview for %q has been scheduled on %s", app.Job.Title, event.Date.Format("2006-01-02 15:04")),
		Link:    "/events/" + event.ID.String(),
		Data:    datatypes.JSON(payload),
	}
	if err := uc.notificationRepo.Create(n); err != nil {
		uc.logger.Warn("failed to create notification", zap.Error(err))
	}
	uc.logger.Info("interview scheduled",
		zap.String("event_id", event.ID.String()),
		zap.String("application_id", event.ApplicationID.String()))
	return event, nil
}

func (uc *EventUsecase) ListMine(userID uuid.UUID) ([]model.Event, error) {
	return uc.eventRepo.ListForUser(userID)
}

// UpdateStatus lets the owning HR user move an event between scheduled,
// confirmed, completed and cancelled.
func (uc *EventUsecase) UpdateStatus(actor model.Principal, id uuid.UUID, status model.EventStatus) (*model.Event, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError("invalid event status",
			map[string]string{"status": "status must be scheduled, confirmed, completed, or cancelled"})
	}
	event, err := uc.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleAdmin && event.HRUserID != actor.UserID {
		return nil, apperror.ErrForbidden
	}
	if _, err := uc.eventRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	event.Status = status
	return event, nil
}
