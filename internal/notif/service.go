package notif

import (
	"context"
	"log"

	"notistack/internal/common"
	"notistack/internal/dbmysql"
)

// NotificationService ties the read-side components together behind the
// three operations the API exposes. All operations are stateless
// per-request computations; the caller's id is passed explicitly.
type NotificationService struct {
	store    NotificationStore
	registry *Registry
	stacker  *Stacker
	bundler  *Bundler
	feed     *Feed
	tracker  *ReadStateTracker
}

func NewNotificationService(store NotificationStore, registry *Registry, broadcaster *Broadcaster) *NotificationService {
	stacker := NewStacker(store)
	return &NotificationService{
		store:    store,
		registry: registry,
		stacker:  stacker,
		bundler:  NewBundler(store, registry, stacker),
		feed:     NewFeed(store),
		tracker:  NewReadStateTracker(store, broadcaster),
	}
}

type UnreadResult struct {
	Notifications []common.NotificationResponse
	HasMore       bool
	UnreadCount   int64
}

func (s *NotificationService) Unread(ctx context.Context, userID uint64, includeRead bool, maxID uint64) (*UnreadResult, error) {
	rows, hasMore, unreadCount, err := s.feed.Unread(ctx, userID, includeRead, maxID)
	if err != nil {
		return nil, err
	}

	return &UnreadResult{
		Notifications: s.render(ctx, rows),
		HasMore:       hasMore,
		UnreadCount:   unreadCount,
	}, nil
}

type IndexResult struct {
	Notifications []common.NotificationResponse
	Stacks        []common.StackSummary
	Types         []common.TypeSummary
	Drill         bool
}

// Index dispatches on the cursor shape: a cursor naming a full stack
// drills into that stack, anything else browses the bundle.
func (s *NotificationService) Index(ctx context.Context, userID uint64, group string, cursor Cursor) (*IndexResult, error) {
	if cursor.Drill() {
		page, total, err := s.stacker.GetStack(ctx, userID, cursor.ObjectType, cursor.ObjectID, cursor.Name, cursor.ID)
		if err != nil {
			return nil, err
		}

		result := &IndexResult{
			Notifications: s.render(ctx, page),
			Drill:         true,
		}
		if summary := s.stacker.Summary(page, total); summary != nil {
			result.Stacks = []common.StackSummary{*summary}
		}
		return result, nil
	}

	types, stacks, rows, err := s.bundler.Bundle(ctx, userID, group, cursor.ID)
	if err != nil {
		return nil, err
	}

	return &IndexResult{
		Notifications: s.render(ctx, rows),
		Stacks:        stacks,
		Types:         types,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uint64, ids []uint64) error {
	return s.tracker.MarkRead(ctx, userID, ids)
}

// render serializes rows, asking the type's registered renderer for the
// display details and falling back to the stored payload when the type
// has no renderer or rendering fails.
func (s *NotificationService) render(ctx context.Context, rows []dbmysql.FeedRow) []common.NotificationResponse {
	responses := make([]common.NotificationResponse, len(rows))
	for i, row := range rows {
		details := row.Details
		if renderer := s.registry.Renderer(row.NotifiableType); renderer != nil {
			rendered, err := renderer.Render(ctx, row.NotifiableID)
			if err != nil {
				log.Printf("Failed to render %s/%d details: %v", row.NotifiableType, row.NotifiableID, err)
			} else {
				details = rendered
			}
		}

		responses[i] = common.NotificationResponse{
			ID:           row.ID,
			Name:         row.Name,
			CreatedAt:    row.CreatedAt,
			ObjectType:   row.NotifiableType,
			ObjectID:     row.NotifiableID,
			SourceUserID: row.SourceUserID,
			IsRead:       row.IsRead,
			Details:      details,
		}
	}
	return responses
}
