package notif

import (
	"context"
	"fmt"

	"notistack/internal/common"
)

// ReadStateTracker applies bulk read transitions and tells the user's
// other live sessions about them.
type ReadStateTracker struct {
	store   NotificationStore
	subject common.Subject
}

func NewReadStateTracker(store NotificationStore, subject common.Subject) *ReadStateTracker {
	return &ReadStateTracker{store: store, subject: subject}
}

// MarkRead sets is_read on the caller's rows among ids. Ids the caller
// does not own match nothing and are not an error; success means the
// update executed, regardless of how many rows changed. The emitted event
// carries the requested ids verbatim and never blocks the caller.
func (t *ReadStateTracker) MarkRead(ctx context.Context, userID uint64, ids []uint64) error {
	if err := t.store.MarkRead(ctx, userID, ids); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	t.subject.NotifyAsync(common.ReadStateEvent{UserID: userID, IDs: ids})

	return nil
}
