package sqlstore

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/daygo-app/daygo/pkg/register"
	"github.com/daygo-app/daygo/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.UsageStatsStore = NewUsageStatsStore(provider)
	})
}

type UsageStatsStore struct {
	CommonFields
}

func NewUsageStatsStore(provider SqlProviderAchieve) *UsageStatsStore {
	repo := &UsageStatsStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USAGE_STATS)
	repo.SetAllColumns("user_id", "entry_count", "template_count", "updated_at")
	return repo
}

func (s *UsageStatsStore) Get(ctx context.Context, userID string) (*types.UsageStats, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.UsageStats
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *UsageStatsStore) Create(ctx context.Context, data types.UsageStats) error {
	if data.UpdatedAt == 0 {
		data.UpdatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("user_id", "entry_count", "template_count", "updated_at").
		Values(data.UserID, data.EntryCount, data.TemplateCount, data.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING")

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UsageStatsStore) IncrEntryCount(ctx context.Context, userID string, delta int64) error {
	return s.incr(ctx, userID, "entry_count", delta)
}

func (s *UsageStatsStore) IncrTemplateCount(ctx context.Context, userID string, delta int64) error {
	return s.incr(ctx, userID, "template_count", delta)
}

// incr applies a signed delta with a floor of zero.
func (s *UsageStatsStore) incr(ctx context.Context, userID, column string, delta int64) error {
	query := sq.Update(s.GetTable()).
		Set(column, sq.Expr(fmt.Sprintf("GREATEST(%s + ?, 0)", column), delta)).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Set overwrites both counters, used by the reconciliation job.
func (s *UsageStatsStore) Set(ctx context.Context, userID string, entryCount, templateCount int64) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"entry_count":    entryCount,
		"template_count": templateCount,
		"updated_at":     time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
