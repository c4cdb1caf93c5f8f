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
		provider.stores.CountdownEventStore = NewCountdownEventStore(provider)
	})
}

type CountdownEventStore struct {
	CommonFields
}

func NewCountdownEventStore(provider SqlProviderAchieve) *CountdownEventStore {
	repo := &CountdownEventStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_COUNTDOWN_EVENT)
	repo.SetAllColumns("id", "user_id", "title", "target_date", "category", "priority", "created_at", "updated_at")
	return repo
}

func (s *CountdownEventStore) Create(ctx context.Context, data types.CountdownEvent) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "title", "target_date", "category", "priority", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.Title, data.TargetDate, data.Category, data.Priority, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *CountdownEventStore) Get(ctx context.Context, userID, id string) (*types.CountdownEvent, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.CountdownEvent
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *CountdownEventStore) Update(ctx context.Context, userID, id string, data types.CountdownEvent) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"title":       data.Title,
		"target_date": data.TargetDate,
		"category":    data.Category,
		"priority":    data.Priority,
		"updated_at":  time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *CountdownEventStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *CountdownEventStore) List(ctx context.Context, userID string) ([]types.CountdownEvent, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).OrderBy("target_date ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.CountdownEvent
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
