package v1

import (
	"context"
	"database/sql"
	"net/http"
	"sort"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/search"
	"github.com/daygo-app/daygo/pkg/stats"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type EntryLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewEntryLogic(ctx context.Context, core *core.Core) *EntryLogic {
	return &EntryLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateEntryArgs struct {
	Title       string
	Content     string
	TemplateID  string
	FieldValues types.JSONRaw
}

func (l *EntryLogic) CreateEntry(args CreateEntryArgs) (*types.JournalEntry, error) {
	claims := l.GetUserInfo()

	if err := NewUsageLogic(l.ctx, l.core).CheckEntryQuota(claims.User, claims.PlanID()); err != nil {
		return nil, err
	}

	if args.TemplateID != "" {
		template, err := l.core.Store().JournalTemplateStore().Get(l.ctx, args.TemplateID)
		if err != nil && err != sql.ErrNoRows {
			return nil, errors.New("EntryLogic.CreateEntry.JournalTemplateStore.Get", i18n.ERROR_INTERNAL, err)
		}
		if template == nil {
			return nil, errors.New("EntryLogic.CreateEntry.template.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
		}
		if !template.IsPublic && template.UserID != claims.User {
			return nil, errors.New("EntryLogic.CreateEntry.template.denied", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
		}
	}

	wordCount := stats.CountWords(args.Content)

	title, content, err := l.sealFields(claims.User, args.Title, args.Content)
	if err != nil {
		return nil, errors.New("EntryLogic.CreateEntry.sealFields", i18n.ERROR_INTERNAL, err)
	}

	entry := types.JournalEntry{
		ID:          utils.GenUniqIDStr(),
		UserID:      claims.User,
		Title:       title,
		Content:     content,
		TemplateID:  args.TemplateID,
		FieldValues: args.FieldValues,
		WordCount:   wordCount,
		IsEncrypt:   types.ENTRY_ENCRYPT_ON,
		CreatedAt:   time.Now().Unix(),
		UpdatedAt:   time.Now().Unix(),
	}

	if err := l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("EntryLogic.CreateEntry.JournalEntryStore.Create", i18n.ERROR_INTERNAL, err)
	}

	NewUsageLogic(l.ctx, l.core).IncrEntryCountAsync(claims.User, 1)

	entry.Title = args.Title
	entry.Content = args.Content
	entry.IsEncrypt = types.ENTRY_ENCRYPT_OFF
	return &entry, nil
}

func (l *EntryLogic) GetEntry(id string) (*types.JournalEntry, error) {
	claims := l.GetUserInfo()

	entry, err := l.core.Store().JournalEntryStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.GetEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if entry == nil {
		return nil, errors.New("EntryLogic.GetEntry.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if err := l.decryptEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (l *EntryLogic) UpdateEntry(id string, args CreateEntryArgs) error {
	claims := l.GetUserInfo()

	entry, err := l.core.Store().JournalEntryStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("EntryLogic.UpdateEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if entry == nil {
		return errors.New("EntryLogic.UpdateEntry.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	title, content, err := l.sealFields(claims.User, args.Title, args.Content)
	if err != nil {
		return errors.New("EntryLogic.UpdateEntry.sealFields", i18n.ERROR_INTERNAL, err)
	}

	err = l.core.Store().JournalEntryStore().Update(l.ctx, claims.User, id, types.UpdateJournalEntryArgs{
		Title:       title,
		Content:     content,
		TemplateID:  args.TemplateID,
		FieldValues: args.FieldValues,
		WordCount:   stats.CountWords(args.Content),
		IsEncrypt:   types.ENTRY_ENCRYPT_ON,
	})
	if err != nil {
		return errors.New("EntryLogic.UpdateEntry.JournalEntryStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *EntryLogic) DeleteEntry(id string) error {
	claims := l.GetUserInfo()

	entry, err := l.core.Store().JournalEntryStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("EntryLogic.DeleteEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if entry == nil {
		return errors.New("EntryLogic.DeleteEntry.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if err := l.core.Store().JournalEntryStore().Delete(l.ctx, claims.User, id); err != nil {
		return errors.New("EntryLogic.DeleteEntry.JournalEntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}

	NewUsageLogic(l.ctx, l.core).IncrEntryCountAsync(claims.User, -1)
	return nil
}

func (l *EntryLogic) ListEntries(page, pageSize uint64) ([]types.JournalEntry, int64, error) {
	claims := l.GetUserInfo()
	opts := types.ListJournalEntryOptions{UserID: claims.User}

	list, err := l.core.Store().JournalEntryStore().List(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("EntryLogic.ListEntries.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().JournalEntryStore().Total(l.ctx, opts)
	if err != nil {
		return nil, 0, errors.New("EntryLogic.ListEntries.JournalEntryStore.Total", i18n.ERROR_INTERNAL, err)
	}

	for i := range list {
		if err := l.decryptEntry(&list[i]); err != nil {
			return nil, 0, err
		}
	}

	return list, total, nil
}

// SearchResult pairs an entry with its keyword relevance.
type SearchResult struct {
	Entry types.JournalEntry `json:"entry"`
	Score float64            `json:"score"`
}

// SearchEntries ranks the caller's own entries against query. Scoring runs
// over decrypted content, so the scan stays bounded to one user's data.
func (l *EntryLogic) SearchEntries(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	claims := l.GetUserInfo()

	list, err := l.core.Store().JournalEntryStore().List(l.ctx, types.ListJournalEntryOptions{
		UserID: claims.User,
	}, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.SearchEntries.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	var results []SearchResult
	for i := range list {
		if err := l.decryptEntry(&list[i]); err != nil {
			return nil, err
		}
		score := search.Score(query, list[i].Title, list[i].Content)
		if score <= 0 {
			continue
		}
		results = append(results, SearchResult{Entry: list[i], Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// sealFields encrypts title and content under the owner's key.
func (l *EntryLogic) sealFields(userID, title, content string) (string, string, error) {
	sealedTitle, err := l.core.FieldCipher().EncryptField(userID, title)
	if err != nil {
		return "", "", err
	}
	sealedContent, err := l.core.FieldCipher().EncryptField(userID, content)
	if err != nil {
		return "", "", err
	}
	return sealedTitle, sealedContent, nil
}

func (l *EntryLogic) decryptEntry(entry *types.JournalEntry) error {
	if entry.IsEncrypt != types.ENTRY_ENCRYPT_ON {
		return nil
	}

	title, err := l.core.FieldCipher().DecryptField(entry.UserID, entry.Title)
	if err != nil {
		return errors.New("EntryLogic.decryptEntry.DecryptField.title", i18n.ERROR_INTERNAL, err)
	}
	content, err := l.core.FieldCipher().DecryptField(entry.UserID, entry.Content)
	if err != nil {
		return errors.New("EntryLogic.decryptEntry.DecryptField.content", i18n.ERROR_INTERNAL, err)
	}

	entry.Title = title
	entry.Content = content
	entry.IsEncrypt = types.ENTRY_ENCRYPT_OFF
	return nil
}
