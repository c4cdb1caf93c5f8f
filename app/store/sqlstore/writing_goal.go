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
		provider.stores.WritingGoalStore = NewWritingGoalStore(provider)
	})
}

type WritingGoalStore struct {
	CommonFields
}

func NewWritingGoalStore(provider SqlProviderAchieve) *WritingGoalStore {
	repo := &WritingGoalStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_WRITING_GOAL)
	repo.SetAllColumns("id", "user_id", "target_words", "period", "is_active", "created_at", "updated_at")
	return repo
}

func (s *WritingGoalStore) Create(ctx context.Context, data types.WritingGoal) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "target_words", "period", "is_active", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.TargetWords, data.Period, data.IsActive, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *WritingGoalStore) Get(ctx context.Context, userID, id string) (*types.WritingGoal, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.WritingGoal
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *WritingGoalStore) List(ctx context.Context, userID string) ([]types.WritingGoal, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.WritingGoal
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *WritingGoalStore) ListActive(ctx context.Context, userID string) ([]types.WritingGoal, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "is_active": true}).OrderBy("period ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.WritingGoal
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *WritingGoalStore) DeactivateByPeriod(ctx context.Context, userID, period string) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "period": period, "is_active": true})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *WritingGoalStore) Update(ctx context.Context, userID, id string, targetWords int64, isActive bool) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"target_words": targetWords,
		"is_active":    isActive,
		"updated_at":   time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *WritingGoalStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
