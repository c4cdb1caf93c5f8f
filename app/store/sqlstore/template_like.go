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
		provider.stores.TemplateLikeStore = NewTemplateLikeStore(provider)
	})
}

type TemplateLikeStore struct {
	CommonFields
}

func NewTemplateLikeStore(provider SqlProviderAchieve) *TemplateLikeStore {
	repo := &TemplateLikeStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TEMPLATE_LIKE)
	repo.SetAllColumns("id", "template_id", "user_id", "created_at")
	return repo
}

func (s *TemplateLikeStore) Create(ctx context.Context, data types.TemplateLike) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("template_id", "user_id", "created_at").
		Values(data.TemplateID, data.UserID, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *TemplateLikeStore) Exists(ctx context.Context, templateID, userID string) (bool, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"template_id": templateID, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return false, ErrorSqlBuild(err)
	}

	var count int64
	if err = s.GetReplica(ctx).Get(&count, queryString, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TemplateLikeStore) Total(ctx context.Context, templateID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"template_id": templateID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *TemplateLikeStore) DeleteAll(ctx context.Context, templateID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"template_id": templateID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
