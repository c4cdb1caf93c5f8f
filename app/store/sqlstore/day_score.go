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
		provider.stores.DayScoreStore = NewDayScoreStore(provider)
	})
}

type DayScoreStore struct {
	CommonFields
}

func NewDayScoreStore(provider SqlProviderAchieve) *DayScoreStore {
	repo := &DayScoreStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DAY_SCORE)
	repo.SetAllColumns("id", "user_id", "date", "score", "note", "created_at", "updated_at")
	return repo
}

// Upsert relies on the (user_id, date) unique constraint to keep one score
// per calendar date.
func (s *DayScoreStore) Upsert(ctx context.Context, data types.DayScore) error {
	now := time.Now().Unix()
	if data.CreatedAt == 0 {
		data.CreatedAt = now
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = now
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "date", "score", "note", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.Date, data.Score, data.Note, data.CreatedAt, data.UpdatedAt).
		Suffix(fmt.Sprintf("ON CONFLICT (user_id, date) DO UPDATE SET score = EXCLUDED.score, note = EXCLUDED.note, updated_at = %d", now))

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *DayScoreStore) Get(ctx context.Context, userID, date string) (*types.DayScore, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "date": date})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.DayScore
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *DayScoreStore) ListRange(ctx context.Context, userID, from, to string) ([]types.DayScore, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.GtOrEq{"date": from}, sq.LtOrEq{"date": to}}).
		OrderBy("date ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.DayScore
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
