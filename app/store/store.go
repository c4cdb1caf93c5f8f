package store

import (
	"context"

	"github.com/daygo-app/daygo/pkg/sqlstore"
	"github.com/daygo-app/daygo/pkg/types"
)

type UserStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, appid, id string) (*types.User, error)
	GetByEmail(ctx context.Context, appid, email string) (*types.User, error)
	UpdateUserProfile(ctx context.Context, appid, id, userName, avatar string) error
	UpdateUserPlan(ctx context.Context, appid, id, planID string) error
	ListUsers(ctx context.Context, appid string, page, pageSize uint64) ([]types.User, error)
	Total(ctx context.Context, appid string) (int64, error)
}

type AccessTokenStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, appid, token string) (*types.AccessToken, error)
	Delete(ctx context.Context, appid, userID string, id int64) error
	ListAccessTokens(ctx context.Context, appid, userID string, page, pageSize uint64) ([]types.AccessToken, error)
	ClearUserTokens(ctx context.Context, appid, userID string) error
}

type JournalEntryStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.JournalEntry) error
	Get(ctx context.Context, userID, id string) (*types.JournalEntry, error)
	Update(ctx context.Context, userID, id string, data types.UpdateJournalEntryArgs) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, opts types.ListJournalEntryOptions, page, pageSize uint64) ([]types.JournalEntry, error)
	Total(ctx context.Context, opts types.ListJournalEntryOptions) (int64, error)
	// ListCreatedTimes returns every entry's creation timestamp for streak
	// computation.
	ListCreatedTimes(ctx context.Context, userID string) ([]int64, error)
	CountSince(ctx context.Context, userID string, since int64) (int64, error)
	SumWordsSince(ctx context.Context, userID string, since int64) (int64, error)
	SumWords(ctx context.Context, userID string) (int64, error)
}

type JournalTemplateStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.JournalTemplate) error
	Get(ctx context.Context, id string) (*types.JournalTemplate, error)
	Update(ctx context.Context, userID, id, name, description string, fields types.JSONRaw) error
	Delete(ctx context.Context, id string) error
	// List orders community listings featured-first then by likes; private
	// listings order by update time.
	List(ctx context.Context, opts types.ListTemplateOptions, page, pageSize uint64) ([]types.JournalTemplate, error)
	Total(ctx context.Context, opts types.ListTemplateOptions) (int64, error)
	SetPublic(ctx context.Context, userID, id string, isPublic bool, category string, tags []string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	IncrLikes(ctx context.Context, id string) error
}

type TemplateLikeStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.TemplateLike) error
	Exists(ctx context.Context, templateID, userID string) (bool, error)
	Total(ctx context.Context, templateID string) (int64, error)
	DeleteAll(ctx context.Context, templateID string) error
}

type WritingGoalStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.WritingGoal) error
	Get(ctx context.Context, userID, id string) (*types.WritingGoal, error)
	List(ctx context.Context, userID string) ([]types.WritingGoal, error)
	ListActive(ctx context.Context, userID string) ([]types.WritingGoal, error)
	DeactivateByPeriod(ctx context.Context, userID, period string) error
	Update(ctx context.Context, userID, id string, targetWords int64, isActive bool) error
	Delete(ctx context.Context, userID, id string) error
}

type CountdownEventStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.CountdownEvent) error
	Get(ctx context.Context, userID, id string) (*types.CountdownEvent, error)
	Update(ctx context.Context, userID, id string, data types.CountdownEvent) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]types.CountdownEvent, error)
}

type DayScoreStore interface {
	sqlstore.SqlCommons
	// Upsert keeps one score record per user per calendar date.
	Upsert(ctx context.Context, data types.DayScore) error
	Get(ctx context.Context, userID, date string) (*types.DayScore, error)
	ListRange(ctx context.Context, userID, from, to string) ([]types.DayScore, error)
}

type DaySegmentStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.DaySegment) error
	Get(ctx context.Context, userID, id string) (*types.DaySegment, error)
	Update(ctx context.Context, userID, id string, data types.DaySegment) error
	Delete(ctx context.Context, userID, id string) error
	ListByDate(ctx context.Context, userID, date string) ([]types.DaySegment, error)
}

type ChatSessionStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.ChatSession) error
	Get(ctx context.Context, userID, id string) (*types.ChatSession, error)
	List(ctx context.Context, userID string, page, pageSize uint64) ([]types.ChatSession, error)
	UpdateTitle(ctx context.Context, userID, id, title string) error
	UpdateLatestAccessTime(ctx context.Context, id string) error
	Delete(ctx context.Context, userID, id string) error
}

type ChatMessageStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.ChatMessage) error
	ListSessionMessage(ctx context.Context, sessionID string, page, pageSize uint64) ([]types.ChatMessage, error)
	GetSessionLatestMessage(ctx context.Context, sessionID string) (*types.ChatMessage, error)
	DeleteAll(ctx context.Context, sessionID string) error
}

type SubscriptionStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Subscription) error
	GetByUser(ctx context.Context, userID string) (*types.Subscription, error)
	GetByProviderSubID(ctx context.Context, providerSubID string) (*types.Subscription, error)
	Update(ctx context.Context, id, planID, status string, currentPeriodAt int64) error
	ListActive(ctx context.Context, page, pageSize uint64) ([]types.Subscription, error)
}

type UsageStatsStore interface {
	sqlstore.SqlCommons
	Get(ctx context.Context, userID string) (*types.UsageStats, error)
	Create(ctx context.Context, data types.UsageStats) error
	// IncrEntryCount and IncrTemplateCount apply a signed delta, flooring at 0.
	IncrEntryCount(ctx context.Context, userID string, delta int64) error
	IncrTemplateCount(ctx context.Context, userID string, delta int64) error
	Set(ctx context.Context, userID string, entryCount, templateCount int64) error
}
