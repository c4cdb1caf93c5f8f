package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/daygo-app/daygo/pkg/register"
	"github.com/daygo-app/daygo/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.JournalTemplateStore = NewJournalTemplateStore(provider)
	})
}

type JournalTemplateStore struct {
	CommonFields
}

func NewJournalTemplateStore(provider SqlProviderAchieve) *JournalTemplateStore {
	repo := &JournalTemplateStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_TEMPLATE)
	repo.SetAllColumns("id", "user_id", "name", "description", "fields", "is_public", "category", "tags", "likes", "is_featured", "created_at", "updated_at")
	return repo
}

func (s *JournalTemplateStore) Create(ctx context.Context, data types.JournalTemplate) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	if data.Tags == nil {
		data.Tags = pq.StringArray{}
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "name", "description", "fields", "is_public", "category", "tags", "likes", "is_featured", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.Name, data.Description, data.Fields, data.IsPublic, data.Category, data.Tags, data.Likes, data.IsFeatured, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalTemplateStore) Get(ctx context.Context, id string) (*types.JournalTemplate, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JournalTemplate
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *JournalTemplateStore) Update(ctx context.Context, userID, id, name, description string, fields types.JSONRaw) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"name":        name,
		"description": description,
		"fields":      fields,
		"updated_at":  time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalTemplateStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalTemplateStore) List(ctx context.Context, opts types.ListTemplateOptions, page, pageSize uint64) ([]types.JournalTemplate, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable())
	if opts.PublicOnly {
		query = query.Where(sq.Eq{"is_public": true}).OrderBy("is_featured DESC", "likes DESC", "created_at DESC")
		if opts.Category != "" {
			query = query.Where(sq.Eq{"category": opts.Category})
		}
	} else {
		query = query.Where(sq.Eq{"user_id": opts.UserID}).OrderBy("updated_at DESC")
	}
	if pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JournalTemplate
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalTemplateStore) Total(ctx context.Context, opts types.ListTemplateOptions) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())
	if opts.PublicOnly {
		query = query.Where(sq.Eq{"is_public": true})
		if opts.Category != "" {
			query = query.Where(sq.Eq{"category": opts.Category})
		}
	} else {
		query = query.Where(sq.Eq{"user_id": opts.UserID})
	}

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

func (s *JournalTemplateStore) SetPublic(ctx context.Context, userID, id string, isPublic bool, category string, tags []string) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"is_public":  isPublic,
		"category":   category,
		"tags":       pq.StringArray(tags),
		"updated_at": time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalTemplateStore) SetFeatured(ctx context.Context, id string, featured bool) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"is_featured": featured,
		"updated_at":  time.Now().Unix(),
	}).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// IncrLikes never decrements; unliking is not supported.
func (s *JournalTemplateStore) IncrLikes(ctx context.Context, id string) error {
	query := sq.Update(s.GetTable()).Set("likes", sq.Expr("likes + 1")).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
