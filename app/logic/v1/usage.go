package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/safe"
	"github.com/daygo-app/daygo/pkg/types"
)

// UsageLogic implements the advisory creation gate. Counters are read before
// a write and bumped asynchronously after it, so brief over-admission under
// concurrency is accepted; the reconciliation job trues them up.
type UsageLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewUsageLogic(ctx context.Context, core *core.Core) *UsageLogic {
	return &UsageLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *UsageLogic) GetUsage(userID string) (*types.UsageStats, error) {
	usage, err := l.core.Store().UsageStatsStore().Get(l.ctx, userID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("UsageLogic.GetUsage.UsageStatsStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if usage == nil {
		usage = &types.UsageStats{UserID: userID}
	}
	return usage, nil
}

func (l *UsageLogic) CheckEntryQuota(userID, planID string) error {
	usage, err := l.GetUsage(userID)
	if err != nil {
		return err
	}

	if usage.EntryCount >= types.LimitsForPlan(planID).MaxEntries {
		return errors.New("UsageLogic.CheckEntryQuota.limit", i18n.ERROR_ENTRY_LIMIT_REACHED, nil).Code(http.StatusPaymentRequired)
	}
	return nil
}

func (l *UsageLogic) CheckTemplateQuota(userID, planID string) error {
	usage, err := l.GetUsage(userID)
	if err != nil {
		return err
	}

	if usage.TemplateCount >= types.LimitsForPlan(planID).MaxTemplates {
		return errors.New("UsageLogic.CheckTemplateQuota.limit", i18n.ERROR_TEMPLATE_LIMIT_REACHED, nil).Code(http.StatusPaymentRequired)
	}
	return nil
}

// IncrEntryCountAsync bumps the entry counter off the request path. Failures
// are logged and swallowed; reconciliation repairs drift.
func (l *UsageLogic) IncrEntryCountAsync(userID string, delta int64) {
	store := l.core.Store().UsageStatsStore()
	go safe.Run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := store.IncrEntryCount(ctx, userID, delta); err != nil {
			slog.Error("failed to bump entry usage counter",
				slog.String("user_id", userID),
				slog.Int64("delta", delta),
				slog.String("error", err.Error()))
		}
	})
}

func (l *UsageLogic) IncrTemplateCountAsync(userID string, delta int64) {
	store := l.core.Store().UsageStatsStore()
	go safe.Run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := store.IncrTemplateCount(ctx, userID, delta); err != nil {
			slog.Error("failed to bump template usage counter",
				slog.String("user_id", userID),
				slog.Int64("delta", delta),
				slog.String("error", err.Error()))
		}
	})
}
