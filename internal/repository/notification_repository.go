package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) List(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error) {
	query := r.db.Model(&model.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var notifications []model.Notification
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepository) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkRead(id, userID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_read": true, "read_at": &now})
	return result.RowsAffected > 0, result.Error
}

func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) (int64, error) {
	now := time.Now()
	result := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": &now})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) Delete(id, userID uuid.UUID) (bool, error) {
	result := r.db.Delete(&model.Notification{}, "id = ? AND user_id = ?", id, userID)
	return result.RowsAffected > 0, result.Error
}
