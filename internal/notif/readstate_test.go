package notif

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notistack/internal/common"
)

func TestReadStateTracker_MarkRead_EmitsVerbatimIDs(t *testing.T) {
	mockStore := &MockNotificationStore{}
	mockSubject := &MockSubject{}
	tracker := NewReadStateTracker(mockStore, mockSubject)

	// 99 is not owned by the caller; the event still carries it.
	ids := []uint64{4, 5, 99}
	mockStore.On("MarkRead", mock.Anything, uint64(1), ids).Return(nil)
	mockSubject.On("NotifyAsync", common.ReadStateEvent{UserID: 1, IDs: ids}).Return()

	err := tracker.MarkRead(context.Background(), 1, ids)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
	mockSubject.AssertExpectations(t)
}

func TestReadStateTracker_MarkRead_StoreErrorSuppressesEvent(t *testing.T) {
	mockStore := &MockNotificationStore{}
	mockSubject := &MockSubject{}
	tracker := NewReadStateTracker(mockStore, mockSubject)

	mockStore.On("MarkRead", mock.Anything, uint64(1), []uint64{4}).Return(errors.New("db error"))

	err := tracker.MarkRead(context.Background(), 1, []uint64{4})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to mark notifications read")
	mockSubject.AssertNotCalled(t, "NotifyAsync", mock.Anything)
}

func TestReadStateTracker_MarkRead_DeliversThroughBroadcaster(t *testing.T) {
	mockStore := &MockNotificationStore{}
	broadcaster := NewBroadcaster(1, 10)
	defer broadcaster.Shutdown()
	tracker := NewReadStateTracker(mockStore, broadcaster)

	observer := &recordingObserver{}
	broadcaster.Subscribe(observer)

	mockStore.On("MarkRead", mock.Anything, uint64(2), []uint64{7, 8}).Return(nil)

	err := tracker.MarkRead(context.Background(), 2, []uint64{7, 8})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		events := observer.Events()
		return len(events) == 1 &&
			events[0].UserID == 2 &&
			len(events[0].IDs) == 2
	}, time.Second, 10*time.Millisecond)
}
