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
		provider.stores.DaySegmentStore = NewDaySegmentStore(provider)
	})
}

type DaySegmentStore struct {
	CommonFields
}

func NewDaySegmentStore(provider SqlProviderAchieve) *DaySegmentStore {
	repo := &DaySegmentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DAY_SEGMENT)
	repo.SetAllColumns("id", "user_id", "date", "title", "start_time", "end_time", "category", "priority", "created_at", "updated_at")
	return repo
}

func (s *DaySegmentStore) Create(ctx context.Context, data types.DaySegment) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "date", "title", "start_time", "end_time", "category", "priority", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.Date, data.Title, data.StartTime, data.EndTime, data.Category, data.Priority, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *DaySegmentStore) Get(ctx context.Context, userID, id string) (*types.DaySegment, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.DaySegment
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *DaySegmentStore) Update(ctx context.Context, userID, id string, data types.DaySegment) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"title":      data.Title,
		"start_time": data.StartTime,
		"end_time":   data.EndTime,
		"category":   data.Category,
		"priority":   data.Priority,
		"updated_at": time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *DaySegmentStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *DaySegmentStore) ListByDate(ctx context.Context, userID, date string) ([]types.DaySegment, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "date": date}).OrderBy("start_time ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.DaySegment
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
