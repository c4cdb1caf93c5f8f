package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/billing"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type SubscriptionLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewSubscriptionLogic(ctx context.Context, core *core.Core) *SubscriptionLogic {
	return &SubscriptionLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type SubscriptionDetail struct {
	PlanID       string              `json:"plan_id"`
	Subscription *types.Subscription `json:"subscription,omitempty"`
	Usage        *types.UsageStats   `json:"usage"`
	Limits       types.PlanLimits    `json:"limits"`
}

// GetSubscription reports the caller's tier, usage counters and limits.
func (l *SubscriptionLogic) GetSubscription() (*SubscriptionDetail, error) {
	claims := l.GetUserInfo()

	user, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SubscriptionLogic.GetSubscription.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return nil, errors.New("SubscriptionLogic.GetSubscription.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	sub, err := l.core.Store().SubscriptionStore().GetByUser(l.ctx, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SubscriptionLogic.GetSubscription.SubscriptionStore.GetByUser", i18n.ERROR_INTERNAL, err)
	}

	usage, err := NewUsageLogic(l.ctx, l.core).GetUsage(claims.User)
	if err != nil {
		return nil, err
	}

	return &SubscriptionDetail{
		PlanID:       user.PlanID,
		Subscription: sub,
		Usage:        usage,
		Limits:       types.LimitsForPlan(user.PlanID),
	}, nil
}

// CreateCheckout proxies a checkout-session request to the payment provider
// and returns the hosted payment URL.
func (l *SubscriptionLogic) CreateCheckout(planID string) (string, error) {
	claims := l.GetUserInfo()

	if !types.IsValidPlan(planID) || planID == types.PLAN_FREE {
		return "", errors.New("SubscriptionLogic.CreateCheckout.plan", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	user, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("SubscriptionLogic.CreateCheckout.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return "", errors.New("SubscriptionLogic.CreateCheckout.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	cfg := l.core.Cfg().Billing
	session, err := l.core.Billing().CreateCheckoutSession(l.ctx, billing.CheckoutSessionArgs{
		CustomerEmail: user.Email,
		PlanID:        planID,
		SuccessURL:    cfg.SuccessURL,
		CancelURL:     cfg.CancelURL,
		Reference:     user.ID,
	})
	if err != nil {
		return "", errors.New("SubscriptionLogic.CreateCheckout.Billing.CreateCheckoutSession", i18n.ERROR_INTERNAL, err)
	}

	return session.URL, nil
}

// HandleWebhook verifies and applies a payment-provider event. The raw
// payload must be passed untouched; the signature covers the exact bytes.
func HandleWebhook(ctx context.Context, core *core.Core, payload []byte, sigHeader string) error {
	err := billing.VerifySignature(payload, sigHeader, core.Cfg().Billing.WebhookSecret, time.Now())
	if err != nil {
		core.Metrics().WebhookInc("unknown", "bad_signature")
		return errors.New("SubscriptionLogic.HandleWebhook.VerifySignature", i18n.ERROR_WEBHOOK_SIGNATURE, err).Code(http.StatusBadRequest)
	}

	event, err := billing.ParseWebhookEvent(payload)
	if err != nil {
		core.Metrics().WebhookInc("unknown", "malformed")
		return errors.New("SubscriptionLogic.HandleWebhook.ParseWebhookEvent", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	switch event.Type {
	case billing.EVENT_SUBSCRIPTION_CREATED, billing.EVENT_SUBSCRIPTION_UPDATED:
		err = applySubscription(ctx, core, event.Subscription)
	case billing.EVENT_SUBSCRIPTION_CANCELED:
		err = cancelSubscription(ctx, core, event.Subscription)
	default:
		// unknown events are acknowledged so the provider stops retrying
		slog.Warn("ignoring unknown billing event",
			slog.String("event_id", event.ID),
			slog.String("event_type", event.Type))
	}

	if err != nil {
		core.Metrics().WebhookInc(event.Type, "error")
		return err
	}

	core.Metrics().WebhookInc(event.Type, "ok")
	return nil
}

// applySubscription upserts the local subscription row and moves the user to
// the paid tier. The provider's Reference field carries our user id.
func applySubscription(ctx context.Context, core *core.Core, remote billing.Subscription) error {
	if remote.Reference == "" || !types.IsValidPlan(remote.PlanID) {
		return errors.New("SubscriptionLogic.applySubscription.payload", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	user, err := core.Store().UserStore().GetUser(ctx, types.DEFAULT_APPID, remote.Reference)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("SubscriptionLogic.applySubscription.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return errors.New("SubscriptionLogic.applySubscription.user.notfound", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	return core.Store().Transaction(ctx, func(ctx context.Context) error {
		existing, err := core.Store().SubscriptionStore().GetByProviderSubID(ctx, remote.ID)
		if err != nil && err != sql.ErrNoRows {
			return errors.New("SubscriptionLogic.applySubscription.SubscriptionStore.GetByProviderSubID", i18n.ERROR_INTERNAL, err)
		}

		if existing == nil {
			err = core.Store().SubscriptionStore().Create(ctx, types.Subscription{
				ID:              utils.GenUniqIDStr(),
				UserID:          remote.Reference,
				PlanID:          remote.PlanID,
				Status:          types.SUBSCRIPTION_STATUS_ACTIVE,
				ProviderSubID:   remote.ID,
				ProviderCustID:  remote.CustomerID,
				CurrentPeriodAt: remote.PeriodEnd,
				CreatedAt:       time.Now().Unix(),
				UpdatedAt:       time.Now().Unix(),
			})
			if err != nil {
				return errors.New("SubscriptionLogic.applySubscription.SubscriptionStore.Create", i18n.ERROR_INTERNAL, err)
			}
		} else {
			err = core.Store().SubscriptionStore().Update(ctx, existing.ID, remote.PlanID, types.SUBSCRIPTION_STATUS_ACTIVE, remote.PeriodEnd)
			if err != nil {
				return errors.New("SubscriptionLogic.applySubscription.SubscriptionStore.Update", i18n.ERROR_INTERNAL, err)
			}
		}

		err = core.Store().UserStore().UpdateUserPlan(ctx, types.DEFAULT_APPID, remote.Reference, remote.PlanID)
		if err != nil {
			return errors.New("SubscriptionLogic.applySubscription.UserStore.UpdateUserPlan", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}

// cancelSubscription marks the subscription canceled and drops the user back
// to the free tier.
func cancelSubscription(ctx context.Context, core *core.Core, remote billing.Subscription) error {
	existing, err := core.Store().SubscriptionStore().GetByProviderSubID(ctx, remote.ID)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("SubscriptionLogic.cancelSubscription.SubscriptionStore.GetByProviderSubID", i18n.ERROR_INTERNAL, err)
	}
	if existing == nil {
		// nothing to cancel, ack and move on
		return nil
	}

	return core.Store().Transaction(ctx, func(ctx context.Context) error {
		err := core.Store().SubscriptionStore().Update(ctx, existing.ID, existing.PlanID, types.SUBSCRIPTION_STATUS_CANCELED, remote.PeriodEnd)
		if err != nil {
			return errors.New("SubscriptionLogic.cancelSubscription.SubscriptionStore.Update", i18n.ERROR_INTERNAL, err)
		}

		err = core.Store().UserStore().UpdateUserPlan(ctx, types.DEFAULT_APPID, existing.UserID, types.PLAN_FREE)
		if err != nil {
			return errors.New("SubscriptionLogic.cancelSubscription.UserStore.UpdateUserPlan", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}
