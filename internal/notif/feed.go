package notif

import (
	"context"
	"fmt"

	"notistack/internal/dbmysql"
)

// feedLimit is the sentinel fetch size: one row more than the feed ever
// returns, so a full fetch proves an older page exists without a second
// existence-check query.
const feedLimit = 51

// Feed produces the flat unread/all-recent notification list.
type Feed struct {
	store NotificationStore
}

func NewFeed(store NotificationStore) *Feed {
	return &Feed{store: store}
}

// Unread returns up to feedLimit-1 notifications newest first. When the
// store hands back exactly feedLimit rows, the oldest is dropped and
// hasMore is set. unreadCount is always the user's full unread total,
// never narrowed by maxID or the returned window.
func (f *Feed) Unread(ctx context.Context, userID uint64, includeRead bool, maxID uint64) (rows []dbmysql.FeedRow, hasMore bool, unreadCount int64, err error) {
	rows, err = f.store.FeedPage(ctx, userID, !includeRead, maxID, feedLimit)
	if err != nil {
		return nil, false, 0, fmt.Errorf("failed to get unread feed: %w", err)
	}

	if len(rows) == feedLimit {
		hasMore = true
		rows = rows[:feedLimit-1]
	}

	unreadCount, err = f.store.UnreadCount(ctx, userID)
	if err != nil {
		return nil, false, 0, fmt.Errorf("failed to get unread count: %w", err)
	}

	return rows, hasMore, unreadCount, nil
}
