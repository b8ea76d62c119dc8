package notif

import (
	"context"

	"notistack/internal/dbmysql"
)

// NotificationStore is the query surface the read-side depends on.
// Implemented by dbmysql.NotificationStore; mocked in tests.
type NotificationStore interface {
	FeedPage(ctx context.Context, userID uint64, unreadOnly bool, maxID uint64, limit int) ([]dbmysql.FeedRow, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	StackPage(ctx context.Context, userID uint64, notifiableType string, notifiableID uint64, name string, beforeID uint64, limit int) ([]dbmysql.FeedRow, error)
	StackTotal(ctx context.Context, userID uint64, notifiableType string, notifiableID uint64, name string) (int64, error)
	TopGroups(ctx context.Context, userID uint64, notifiableType string, beforeID uint64, limit int) ([]dbmysql.GroupHead, error)
	CountByType(ctx context.Context, userID uint64, notifiableType string) (int64, error)
	MarkRead(ctx context.Context, userID uint64, ids []uint64) error
}
