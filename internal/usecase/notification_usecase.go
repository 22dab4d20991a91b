package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
)

type NotificationUsecase struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationUsecase(notificationRepo *repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

func (uc *NotificationUsecase) List(userID uuid.UUID, unreadOnly bool, page, perPage int) ([]model.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return uc.notificationRepo.List(userID, unreadOnly, (page-1)*perPage, perPage)
}

func (uc *NotificationUsecase) UnreadCount(userID uuid.UUID) (int64, error) {
	return uc.notificationRepo.UnreadCount(userID)
}

func (uc *NotificationUsecase) MarkRead(id, userID uuid.UUID) error {
	ok, err := uc.notificationRepo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: notification", apperror.ErrNotFound)
	}
	return nil
}

func (uc *NotificationUsecase) MarkAllRead(userID uuid.UUID) (int64, error) {
	return uc.notificationRepo.MarkAllRead(userID)
}

func (uc *NotificationUsecase) Delete(id, userID uuid.UUID) error {
	ok, err := uc.notificationRepo.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: notification", apperror.ErrNotFound)
	}
	return nil
}
