package v1

import (
	"context"
	"database/sql"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/stats"
	"github.com/daygo-app/daygo/pkg/types"
)

type StatsLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewStatsLogic(ctx context.Context, core *core.Core) *StatsLogic {
	return &StatsLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type StatsOverview struct {
	TotalEntries  int64                `json:"total_entries"`
	TotalWords    int64                `json:"total_words"`
	CurrentStreak int                  `json:"current_streak"`
	EntriesLast7d int64                `json:"entries_last_7d"`
	WordsLast7d   int64                `json:"words_last_7d"`
	Goals         []types.GoalProgress `json:"goals"`
}

// Overview aggregates journaling activity for the dashboard.
func (l *StatsLogic) Overview() (*StatsOverview, error) {
	claims := l.GetUserInfo()
	entryStore := l.core.Store().JournalEntryStore()
	now := time.Now()

	total, err := entryStore.Total(l.ctx, types.ListJournalEntryOptions{UserID: claims.User})
	if err != nil {
		return nil, errors.New("StatsLogic.Overview.JournalEntryStore.Total", i18n.ERROR_INTERNAL, err)
	}

	totalWords, err := entryStore.SumWords(l.ctx, claims.User)
	if err != nil {
		return nil, errors.New("StatsLogic.Overview.JournalEntryStore.SumWords", i18n.ERROR_INTERNAL, err)
	}

	createdTimes, err := entryStore.ListCreatedTimes(l.ctx, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("StatsLogic.Overview.JournalEntryStore.ListCreatedTimes", i18n.ERROR_INTERNAL, err)
	}

	entryTimes := make([]time.Time, 0, len(createdTimes))
	for _, ts := range createdTimes {
		entryTimes = append(entryTimes, time.Unix(ts, 0))
	}

	weekAgo := now.AddDate(0, 0, -7).Unix()
	entriesLast7d, err := entryStore.CountSince(l.ctx, claims.User, weekAgo)
	if err != nil {
		return nil, errors.New("StatsLogic.Overview.JournalEntryStore.CountSince", i18n.ERROR_INTERNAL, err)
	}

	wordsLast7d, err := entryStore.SumWordsSince(l.ctx, claims.User, weekAgo)
	if err != nil {
		return nil, errors.New("StatsLogic.Overview.JournalEntryStore.SumWordsSince", i18n.ERROR_INTERNAL, err)
	}

	goals, err := NewGoalLogic(l.ctx, l.core).GoalProgress()
	if err != nil {
		return nil, err
	}

	return &StatsOverview{
		TotalEntries:  total,
		TotalWords:    totalWords,
		CurrentStreak: stats.Streak(entryTimes, now),
		EntriesLast7d: entriesLast7d,
		WordsLast7d:   wordsLast7d,
		Goals:         goals,
	}, nil
}
