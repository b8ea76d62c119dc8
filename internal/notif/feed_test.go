package notif

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notistack/internal/dbmysql"
)

func fullFeedPage(n int) []dbmysql.FeedRow {
	rows := make([]dbmysql.FeedRow, n)
	for i := 0; i < n; i++ {
		rows[i] = feedRow(uint64(n-i), "forum_topic", 7, "forum_topic_reply")
	}
	return rows
}

func TestFeed_Unread_FullWindowSetsHasMore(t *testing.T) {
	mockStore := &MockNotificationStore{}
	feed := NewFeed(mockStore)

	mockStore.On("FeedPage", mock.Anything, uint64(1), true, uint64(0), feedLimit).Return(fullFeedPage(feedLimit), nil)
	mockStore.On("UnreadCount", mock.Anything, uint64(1)).Return(int64(120), nil)

	rows, hasMore, unreadCount, err := feed.Unread(context.Background(), 1, false, 0)

	assert.NoError(t, err)
	assert.True(t, hasMore)
	assert.Len(t, rows, feedLimit-1)
	// The sentinel row (the oldest) is dropped, not returned.
	assert.Equal(t, uint64(2), rows[len(rows)-1].ID)
	assert.Equal(t, int64(120), unreadCount)
	mockStore.AssertExpectations(t)
}

func TestFeed_Unread_PartialWindow(t *testing.T) {
	mockStore := &MockNotificationStore{}
	feed := NewFeed(mockStore)

	mockStore.On("FeedPage", mock.Anything, uint64(1), true, uint64(0), feedLimit).Return(fullFeedPage(3), nil)
	mockStore.On("UnreadCount", mock.Anything, uint64(1)).Return(int64(3), nil)

	rows, hasMore, unreadCount, err := feed.Unread(context.Background(), 1, false, 0)

	assert.NoError(t, err)
	assert.False(t, hasMore)
	assert.Len(t, rows, 3)
	assert.Equal(t, int64(3), unreadCount)
}

func TestFeed_Unread_IncludeReadAndMaxID(t *testing.T) {
	mockStore := &MockNotificationStore{}
	feed := NewFeed(mockStore)

	// with_read flips unreadOnly off; max_id passes straight through.
	mockStore.On("FeedPage", mock.Anything, uint64(1), false, uint64(40), feedLimit).Return(fullFeedPage(2), nil)
	mockStore.On("UnreadCount", mock.Anything, uint64(1)).Return(int64(9), nil)

	rows, hasMore, unreadCount, err := feed.Unread(context.Background(), 1, true, 40)

	assert.NoError(t, err)
	assert.False(t, hasMore)
	assert.Len(t, rows, 2)
	// The unread total never narrows with the window.
	assert.Equal(t, int64(9), unreadCount)
	mockStore.AssertExpectations(t)
}

func TestFeed_Unread_StoreErrors(t *testing.T) {
	t.Run("page error", func(t *testing.T) {
		mockStore := &MockNotificationStore{}
		feed := NewFeed(mockStore)

		mockStore.On("FeedPage", mock.Anything, uint64(1), true, uint64(0), feedLimit).Return([]dbmysql.FeedRow{}, errors.New("db error"))

		_, _, _, err := feed.Unread(context.Background(), 1, false, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get unread feed")
	})

	t.Run("count error", func(t *testing.T) {
		mockStore := &MockNotificationStore{}
		feed := NewFeed(mockStore)

		mockStore.On("FeedPage", mock.Anything, uint64(1), true, uint64(0), feedLimit).Return(fullFeedPage(1), nil)
		mockStore.On("UnreadCount", mock.Anything, uint64(1)).Return(int64(0), errors.New("db error"))

		_, _, _, err := feed.Unread(context.Background(), 1, false, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get unread count")
	})
}
