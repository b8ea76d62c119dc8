package notif

import (
	"context"
	"fmt"

	"notistack/internal/common"
	"notistack/internal/dbmysql"
)

// bundleGroupLimit bounds how many distinct (name, notifiable_id) groups
// one type contributes to a bundle page.
const bundleGroupLimit = 5

// Bundler assembles the multi-type browse page: per-type summaries, stack
// summaries, and the merged notification list.
type Bundler struct {
	store    NotificationStore
	registry *Registry
	stacker  *Stacker
}

func NewBundler(store NotificationStore, registry *Registry, stacker *Stacker) *Bundler {
	return &Bundler{store: store, registry: registry, stacker: stacker}
}

// Bundle walks the registered types in registry order, skipping those that
// mismatch typeFilter. For each type it takes up to bundleGroupLimit
// groups ordered by their maximum id descending, then fetches each group's
// stack under the same outer beforeID bound, so every nested item stays
// within the page boundary.
//
// Invariant: the per-type cursor is the oldest id of the last non-empty
// stack page processed. That is the correct resumption boundary only
// because groups are visited in strictly descending max-id order; walking
// them in any other order breaks pagination.
func (b *Bundler) Bundle(ctx context.Context, userID uint64, typeFilter string, beforeID uint64) ([]common.TypeSummary, []common.StackSummary, []dbmysql.FeedRow, error) {
	var (
		types  []common.TypeSummary
		stacks []common.StackSummary
		merged []dbmysql.FeedRow
	)

	for _, key := range b.registry.Keys() {
		if typeFilter != "" && typeFilter != key {
			continue
		}

		groups, err := b.store.TopGroups(ctx, userID, key, beforeID, bundleGroupLimit)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to get %s groups: %w", key, err)
		}

		var typeCursor *common.TypeCursor
		for _, group := range groups {
			page, total, err := b.stacker.GetStack(ctx, userID, key, group.NotifiableID, group.Name, beforeID)
			if err != nil {
				return nil, nil, nil, err
			}

			summary := b.stacker.Summary(page, total)
			if summary == nil {
				continue
			}

			typeCursor = &common.TypeCursor{ID: page[len(page)-1].ID}
			stacks = append(stacks, *summary)
			merged = append(merged, page...)
		}

		total, err := b.store.CountByType(ctx, userID, key)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to count %s notifications: %w", key, err)
		}

		types = append(types, common.TypeSummary{
			Name:   key,
			Total:  total,
			Cursor: typeCursor,
		})
	}

	return types, stacks, merged, nil
}
