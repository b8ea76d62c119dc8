package dbmysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// NotificationStore serves the filtered/grouped/counted queries the
// notification read-side depends on. Every query joins through
// user_notifications: a user only ever observes notifications fanned out
// to them.
type NotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) visible(ctx context.Context, userID uint64) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("notifications").
		Joins("JOIN user_notifications ON user_notifications.notification_id = notifications.id").
		Where("user_notifications.user_id = ?", userID)
}

// FeedPage returns up to limit notifications visible to the user, newest
// first. maxID of 0 means unbounded; the bound is inclusive.
func (s *NotificationStore) FeedPage(ctx context.Context, userID uint64, unreadOnly bool, maxID uint64, limit int) ([]FeedRow, error) {
	query := s.visible(ctx, userID).
		Select("notifications.*, user_notifications.is_read")

	if unreadOnly {
		query = query.Where("user_notifications.is_read = ?", false)
	}
	if maxID > 0 {
		query = query.Where("notifications.id <= ?", maxID)
	}

	var rows []FeedRow
	if err := query.Order("notifications.id DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get feed page: %w", err)
	}
	return rows, nil
}

// UnreadCount is the user's full unread total, never narrowed by any
// pagination window.
func (s *NotificationStore) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64

	err := s.visible(ctx, userID).
		Where("user_notifications.is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get unread count: %w", err)
	}

	return count, nil
}

// StackPage returns up to limit members of one stack newest first,
// restricted to id strictly below beforeID when beforeID is set. The
// strict bound is what keeps successive pages duplicate-free.
func (s *NotificationStore) StackPage(ctx context.Context, userID uint64, notifiableType string, notifiableID uint64, name string, beforeID uint64, limit int) ([]FeedRow, error) {
	query := s.visible(ctx, userID).
		Select("notifications.*, user_notifications.is_read").
		Where("notifications.notifiable_type = ? AND notifications.notifiable_id = ? AND notifications.name = ?",
			notifiableType, notifiableID, name)

	if beforeID > 0 {
		query = query.Where("notifications.id < ?", beforeID)
	}

	var rows []FeedRow
	if err := query.Order("notifications.id DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get stack page: %w", err)
	}
	return rows, nil
}

// StackTotal counts every member of a stack regardless of any cursor. It
// reflects the true collapse size, not the page size.
func (s *NotificationStore) StackTotal(ctx context.Context, userID uint64, notifiableType string, notifiableID uint64, name string) (int64, error) {
	var count int64

	err := s.visible(ctx, userID).
		Where("notifications.notifiable_type = ? AND notifications.notifiable_id = ? AND notifications.name = ?",
			notifiableType, notifiableID, name).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count stack: %w", err)
	}

	return count, nil
}

// TopGroups lists up to limit distinct (name, notifiable_id) groups of one
// type, each represented by its maximum id, ordered by that maximum
// descending. The beforeID bound applies to the member rows, so a group
// with older remaining members reappears on later pages under its
// in-window maximum.
func (s *NotificationStore) TopGroups(ctx context.Context, userID uint64, notifiableType string, beforeID uint64, limit int) ([]GroupHead, error) {
	query := s.visible(ctx, userID).
		Select("notifications.name, notifications.notifiable_id, MAX(notifications.id) AS max_id").
		Where("notifications.notifiable_type = ?", notifiableType)

	if beforeID > 0 {
		query = query.Where("notifications.id < ?", beforeID)
	}

	var heads []GroupHead
	err := query.
		Group("notifications.name, notifications.notifiable_id").
		Order("max_id DESC").
		Limit(limit).
		Scan(&heads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notification groups: %w", err)
	}

	return heads, nil
}

// CountByType is the full per-type notification count irrespective of
// pagination.
func (s *NotificationStore) CountByType(ctx context.Context, userID uint64, notifiableType string) (int64, error) {
	var count int64

	err := s.visible(ctx, userID).
		Where("notifications.notifiable_type = ?", notifiableType).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s notifications: %w", notifiableType, err)
	}

	return count, nil
}

// MarkRead flips is_read on the caller's rows for the given ids. Ids the
// caller does not own simply match nothing. Success reflects that the
// update executed, not how many rows it touched.
func (s *NotificationStore) MarkRead(ctx context.Context, userID uint64, ids []uint64) error {
	result := s.db.WithContext(ctx).
		Model(&UserNotification{}).
		Where("user_id = ? AND notification_id IN ?", userID, ids).
		Update("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}

	return nil
}
