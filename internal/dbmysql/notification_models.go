package dbmysql

import (
	"time"

	"notistack/internal/common"
)

// Notification is one immutable event in the append-only log. The
// auto-increment id is the only ordering and pagination key: it is total
// and matches creation order.
type Notification struct {
	ID             uint64                     `gorm:"primaryKey;autoIncrement"`
	Name           string                     `gorm:"not null;size:100;index:idx_stack,priority:3"`
	NotifiableType string                     `gorm:"not null;size:50;index:idx_stack,priority:1"`
	NotifiableID   uint64                     `gorm:"not null;index:idx_stack,priority:2"`
	SourceUserID   *uint64                    `gorm:"index"`
	Details        common.NotificationDetails `gorm:"type:json"`
	CreatedAt      time.Time                  `gorm:"autoCreateTime"`
}

// UserNotification fans a notification out to one recipient and holds
// their read-state. At most one row per (user, notification); is_read only
// ever moves false to true here.
type UserNotification struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	UserID         uint64 `gorm:"not null;uniqueIndex:idx_user_notif,priority:1"`
	NotificationID uint64 `gorm:"not null;uniqueIndex:idx_user_notif,priority:2"`
	IsRead         bool   `gorm:"not null;default:false"`
}

// FeedRow is a notification joined with the caller's read-state, the shape
// every read query returns.
type FeedRow struct {
	ID             uint64
	Name           string
	NotifiableType string
	NotifiableID   uint64
	SourceUserID   *uint64
	Details        common.NotificationDetails `gorm:"type:json"`
	CreatedAt      time.Time
	IsRead         bool
}

// GroupHead is one (name, notifiable_id) group within a type, represented
// by the maximum notification id among its members.
type GroupHead struct {
	Name         string
	NotifiableID uint64
	MaxID        uint64
}
