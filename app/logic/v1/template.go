package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type TemplateLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewTemplateLogic(ctx context.Context, core *core.Core) *TemplateLogic {
	return &TemplateLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateTemplateArgs struct {
	Name        string
	Description string
	Fields      types.JSONRaw
}

func (l *TemplateLogic) CreateTemplate(args CreateTemplateArgs) (*types.JournalTemplate, error) {
	claims := l.GetUserInfo()

	if err := NewUsageLogic(l.ctx, l.core).CheckTemplateQuota(claims.User, claims.PlanID()); err != nil {
		return nil, err
	}

	template := types.JournalTemplate{
		ID:          utils.GenUniqIDStr(),
		UserID:      claims.User,
		Name:        args.Name,
		Description: args.Description,
		Fields:      args.Fields,
		CreatedAt:   time.Now().Unix(),
		UpdatedAt:   time.Now().Unix(),
	}

	if err := l.core.Store().JournalTemplateStore().Create(l.ctx, template); err != nil {
		return nil, errors.New("TemplateLogic.CreateTemplate.JournalTemplateStore.Create", i18n.ERROR_INTERNAL, err)
	}

	NewUsageLogic(l.ctx, l.core).IncrTemplateCountAsync(claims.User, 1)
	return &template, nil
}

// GetTemplate returns a template the caller owns or any public one.
func (l *TemplateLogic) GetTemplate(id string) (*types.JournalTemplate, error) {
	claims := l.GetUserInfo()

	template, err := l.core.Store().JournalTemplateStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TemplateLogic.GetTemplate.JournalTemplateStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if template == nil {
		return nil, errors.New("TemplateLogic.GetTemplate.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	if !template.IsPublic && template.UserID != claims.User {
		return nil, errors.New("TemplateLogic.GetTemplate.denied", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return template, nil
}

func (l *TemplateLogic) UpdateTemplate(id string, args CreateTemplateArgs) error {
	claims := l.GetUserInfo()

	template, err := l.ownedTemplate(id, claims.User)
	if err != nil {
		return err
	}

	err = l.core.Store().JournalTemplateStore().Update(l.ctx, template.UserID, id, args.Name, args.Description, args.Fields)
	if err != nil {
		return errors.New("TemplateLogic.UpdateTemplate.JournalTemplateStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// DeleteTemplate removes a template the caller owns. Admins may remove any
// community template.
func (l *TemplateLogic) DeleteTemplate(id string) error {
	claims := l.GetUserInfo()

	template, err := l.core.Store().JournalTemplateStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("TemplateLogic.DeleteTemplate.JournalTemplateStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if template == nil {
		return errors.New("TemplateLogic.DeleteTemplate.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if template.UserID != claims.User {
		if err := l.RequireAdmin(); err != nil {
			return err
		}
	}

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().JournalTemplateStore().Delete(ctx, id); err != nil {
			return errors.New("TemplateLogic.DeleteTemplate.JournalTemplateStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().TemplateLikeStore().DeleteAll(ctx, id); err != nil {
			return errors.New("TemplateLogic.DeleteTemplate.TemplateLikeStore.DeleteAll", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	NewUsageLogic(l.ctx, l.core).IncrTemplateCountAsync(template.UserID, -1)
	return nil
}

func (l *TemplateLogic) ListMyTemplates(page, pageSize uint64) ([]types.JournalTemplate, int64, error) {
	claims := l.GetUserInfo()
	opts := types.ListTemplateOptions{UserID: claims.User}

	list, err := l.core.Store().JournalTemplateStore().List(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("TemplateLogic.ListMyTemplates.JournalTemplateStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().JournalTemplateStore().Total(l.ctx, opts)
	if err != nil {
		return nil, 0, errors.New("TemplateLogic.ListMyTemplates.JournalTemplateStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}

// ListCommunityTemplates lists shared templates, featured first, then by
// like count.
func (l *TemplateLogic) ListCommunityTemplates(category string, page, pageSize uint64) ([]types.JournalTemplate, int64, error) {
	opts := types.ListTemplateOptions{
		PublicOnly: true,
		Category:   category,
	}

	list, err := l.core.Store().JournalTemplateStore().List(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("TemplateLogic.ListCommunityTemplates.JournalTemplateStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().JournalTemplateStore().Total(l.ctx, opts)
	if err != nil {
		return nil, 0, errors.New("TemplateLogic.ListCommunityTemplates.JournalTemplateStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}

func (l *TemplateLogic) ShareTemplate(id, category string, tags []string) error {
	claims := l.GetUserInfo()

	if _, err := l.ownedTemplate(id, claims.User); err != nil {
		return err
	}

	err := l.core.Store().JournalTemplateStore().SetPublic(l.ctx, claims.User, id, true, category, tags)
	if err != nil {
		return errors.New("TemplateLogic.ShareTemplate.JournalTemplateStore.SetPublic", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *TemplateLogic) UnshareTemplate(id string) error {
	claims := l.GetUserInfo()

	if _, err := l.ownedTemplate(id, claims.User); err != nil {
		return err
	}

	err := l.core.Store().JournalTemplateStore().SetPublic(l.ctx, claims.User, id, false, "", nil)
	if err != nil {
		return errors.New("TemplateLogic.UnshareTemplate.JournalTemplateStore.SetPublic", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// LikeTemplate registers one like per user per template.
func (l *TemplateLogic) LikeTemplate(id string) error {
	claims := l.GetUserInfo()

	template, err := l.core.Store().JournalTemplateStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("TemplateLogic.LikeTemplate.JournalTemplateStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if template == nil || !template.IsPublic {
		return errors.New("TemplateLogic.LikeTemplate.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	liked, err := l.core.Store().TemplateLikeStore().Exists(l.ctx, id, claims.User)
	if err != nil {
		return errors.New("TemplateLogic.LikeTemplate.TemplateLikeStore.Exists", i18n.ERROR_INTERNAL, err)
	}
	if liked {
		return errors.New("TemplateLogic.LikeTemplate.exist", i18n.ERROR_ALREADY_LIKED, nil).Code(http.StatusBadRequest)
	}

	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		err := l.core.Store().TemplateLikeStore().Create(ctx, types.TemplateLike{
			TemplateID: id,
			UserID:     claims.User,
			CreatedAt:  time.Now().Unix(),
		})
		if err != nil {
			return errors.New("TemplateLogic.LikeTemplate.TemplateLikeStore.Create", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().JournalTemplateStore().IncrLikes(ctx, id); err != nil {
			return errors.New("TemplateLogic.LikeTemplate.JournalTemplateStore.IncrLikes", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}

// FeatureTemplate is admin-only curation of the community listing.
func (l *TemplateLogic) FeatureTemplate(id string, featured bool) error {
	if err := l.RequireAdmin(); err != nil {
		return err
	}

	template, err := l.core.Store().JournalTemplateStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("TemplateLogic.FeatureTemplate.JournalTemplateStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if template == nil || !template.IsPublic {
		return errors.New("TemplateLogic.FeatureTemplate.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if err := l.core.Store().JournalTemplateStore().SetFeatured(l.ctx, id, featured); err != nil {
		return errors.New("TemplateLogic.FeatureTemplate.JournalTemplateStore.SetFeatured", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *TemplateLogic) ownedTemplate(id, userID string) (*types.JournalTemplate, error) {
	template, err := l.core.Store().JournalTemplateStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TemplateLogic.ownedTemplate.JournalTemplateStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if template == nil {
		return nil, errors.New("TemplateLogic.ownedTemplate.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	if template.UserID != userID {
		return nil, errors.New("TemplateLogic.ownedTemplate.denied", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return template, nil
}
