package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/daygo-app/daygo/pkg/register"
	"github.com/daygo-app/daygo/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.SubscriptionStore = NewSubscriptionStore(provider)
	})
}

type SubscriptionStore struct {
	CommonFields
}

func NewSubscriptionStore(provider SqlProviderAchieve) *SubscriptionStore {
	repo := &SubscriptionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SUBSCRIPTION)
	repo.SetAllColumns("id", "user_id", "plan_id", "status", "provider_sub_id", "provider_cust_id", "current_period_at", "created_at", "updated_at")
	return repo
}

func (s *SubscriptionStore) Create(ctx context.Context, data types.Subscription) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "plan_id", "status", "provider_sub_id", "provider_cust_id", "current_period_at", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.PlanID, data.Status, data.ProviderSubID, data.ProviderCustID, data.CurrentPeriodAt, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SubscriptionStore) GetByUser(ctx context.Context, userID string) (*types.Subscription, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").Limit(1)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Subscription
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SubscriptionStore) GetByProviderSubID(ctx context.Context, providerSubID string) (*types.Subscription, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"provider_sub_id": providerSubID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Subscription
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SubscriptionStore) Update(ctx context.Context, id, planID, status string, currentPeriodAt int64) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"plan_id":           planID,
		"status":            status,
		"current_period_at": currentPeriodAt,
		"updated_at":        time.Now().Unix(),
	}).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SubscriptionStore) ListActive(ctx context.Context, page, pageSize uint64) ([]types.Subscription, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"status": types.SUBSCRIPTION_STATUS_ACTIVE}).
		Limit(pageSize).Offset((page - 1) * pageSize).OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Subscription
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
