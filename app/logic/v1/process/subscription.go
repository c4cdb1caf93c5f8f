package process

import (
	"context"
	"log/slog"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/types"
)

const reconcileBatchSize = uint64(100)

// SubscriptionReconcileTask re-reads every active subscription from the
// payment provider and repairs local tier drift, e.g. when a webhook was
// missed.
type SubscriptionReconcileTask struct {
	core *core.Core
}

func NewSubscriptionReconcileTask(core *core.Core) *SubscriptionReconcileTask {
	return &SubscriptionReconcileTask{core: core}
}

func (t *SubscriptionReconcileTask) Run(ctx context.Context) error {
	page := uint64(1)
	for {
		subs, err := t.core.Store().SubscriptionStore().ListActive(ctx, page, reconcileBatchSize)
		if err != nil {
			return err
		}
		if len(subs) == 0 {
			return nil
		}

		for _, sub := range subs {
			if err := t.reconcileOne(ctx, sub); err != nil {
				// keep going, one broken subscription must not block the rest
				slog.Error("failed to reconcile subscription",
					slog.String("subscription_id", sub.ID),
					slog.String("error", err.Error()))
			}
		}

		if len(subs) < int(reconcileBatchSize) {
			return nil
		}
		page++
	}
}

func (t *SubscriptionReconcileTask) reconcileOne(ctx context.Context, sub types.Subscription) error {
	remote, err := t.core.Billing().GetSubscription(ctx, sub.ProviderSubID)
	if err != nil {
		return err
	}

	status := types.SUBSCRIPTION_STATUS_ACTIVE
	plan := remote.PlanID
	switch remote.Status {
	case "canceled", "expired":
		status = types.SUBSCRIPTION_STATUS_CANCELED
		plan = types.PLAN_FREE
	case "past_due":
		status = types.SUBSCRIPTION_STATUS_PAST_DUE
	}

	if sub.Status == status && sub.PlanID == remote.PlanID && sub.CurrentPeriodAt == remote.PeriodEnd {
		return nil
	}

	return t.core.Store().Transaction(ctx, func(ctx context.Context) error {
		if err := t.core.Store().SubscriptionStore().Update(ctx, sub.ID, remote.PlanID, status, remote.PeriodEnd); err != nil {
			return err
		}
		if !types.IsValidPlan(plan) {
			plan = types.PLAN_FREE
		}
		return t.core.Store().UserStore().UpdateUserPlan(ctx, types.DEFAULT_APPID, sub.UserID, plan)
	})
}
