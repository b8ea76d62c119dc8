package notif

import (
	"context"
	"fmt"

	"notistack/internal/common"
	"notistack/internal/dbmysql"
)

// stackPageSize bounds how many raw events one stack page discloses.
const stackPageSize = 5

// Stacker collapses the raw events sharing (notifiable_type,
// notifiable_id, name) into a bounded page plus the true collapse size, so
// a burst of identical events on one object shows as a single row with a
// disclosed total.
type Stacker struct {
	store NotificationStore
}

func NewStacker(store NotificationStore) *Stacker {
	return &Stacker{store: store}
}

// GetStack returns up to stackPageSize members newest first, bounded to
// id < beforeID when beforeID is set, and the total matching count. The
// total ignores the cursor. Total and page are independent reads; a write
// landing between them can skew one against the other, which is accepted.
func (s *Stacker) GetStack(ctx context.Context, userID uint64, notifiableType string, notifiableID uint64, name string, beforeID uint64) ([]dbmysql.FeedRow, int64, error) {
	total, err := s.store.StackTotal(ctx, userID, notifiableType, notifiableID, name)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count stack: %w", err)
	}

	page, err := s.store.StackPage(ctx, userID, notifiableType, notifiableID, name, beforeID, stackPageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get stack page: %w", err)
	}

	return page, total, nil
}

// Summary derives the stack summary for one fetched page. An empty page
// yields nil and the caller omits the stack from output. The cursor points
// at the oldest member of this page, so the next fetch resumes strictly
// below it.
func (s *Stacker) Summary(page []dbmysql.FeedRow, total int64) *common.StackSummary {
	if len(page) == 0 {
		return nil
	}

	oldest := page[len(page)-1]
	return &common.StackSummary{
		Name:       oldest.Name,
		ObjectType: oldest.NotifiableType,
		ObjectID:   oldest.NotifiableID,
		Total:      total,
		Cursor: common.StackCursor{
			ID:         oldest.ID,
			ObjectType: oldest.NotifiableType,
			ObjectID:   oldest.NotifiableID,
			Name:       oldest.Name,
		},
	}
}
