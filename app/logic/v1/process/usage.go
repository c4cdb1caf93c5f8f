package process

import (
	"context"
	"log/slog"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/types"
)

// UsageReconcileTask recounts each user's entries and templates from the
// source tables and overwrites the advisory counters, repairing drift from
// the async increments.
type UsageReconcileTask struct {
	core *core.Core
}

func NewUsageReconcileTask(core *core.Core) *UsageReconcileTask {
	return &UsageReconcileTask{core: core}
}

func (t *UsageReconcileTask) Run(ctx context.Context) error {
	page := uint64(1)
	for {
		users, err := t.core.Store().UserStore().ListUsers(ctx, types.DEFAULT_APPID, page, reconcileBatchSize)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}

		for _, user := range users {
			if err := t.reconcileOne(ctx, user.ID); err != nil {
				slog.Error("failed to reconcile usage counters",
					slog.String("user_id", user.ID),
					slog.String("error", err.Error()))
			}
		}

		if len(users) < int(reconcileBatchSize) {
			return nil
		}
		page++
	}
}

func (t *UsageReconcileTask) reconcileOne(ctx context.Context, userID string) error {
	entries, err := t.core.Store().JournalEntryStore().Total(ctx, types.ListJournalEntryOptions{UserID: userID})
	if err != nil {
		return err
	}

	templates, err := t.core.Store().JournalTemplateStore().Total(ctx, types.ListTemplateOptions{UserID: userID})
	if err != nil {
		return err
	}

	return t.core.Store().UsageStatsStore().Set(ctx, userID, entries, templates)
}
