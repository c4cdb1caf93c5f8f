package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/stats"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type GoalLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewGoalLogic(ctx context.Context, core *core.Core) *GoalLogic {
	return &GoalLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// CreateGoal keeps at most one active goal per period; an existing active
// goal for the same period is deactivated inside the same transaction.
func (l *GoalLogic) CreateGoal(targetWords int64, period string) (*types.WritingGoal, error) {
	claims := l.GetUserInfo()

	if !types.IsValidGoalPeriod(period) {
		return nil, errors.New("GoalLogic.CreateGoal.period", i18n.ERROR_GOAL_INVALID_PERIOD, nil).Code(http.StatusBadRequest)
	}
	if targetWords <= 0 {
		return nil, errors.New("GoalLogic.CreateGoal.target", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	goal := types.WritingGoal{
		ID:          utils.GenUniqIDStr(),
		UserID:      claims.User,
		TargetWords: targetWords,
		Period:      period,
		IsActive:    true,
		CreatedAt:   time.Now().Unix(),
		UpdatedAt:   time.Now().Unix(),
	}

	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().WritingGoalStore().DeactivateByPeriod(ctx, claims.User, period); err != nil {
			return errors.New("GoalLogic.CreateGoal.WritingGoalStore.DeactivateByPeriod", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().WritingGoalStore().Create(ctx, goal); err != nil {
			return errors.New("GoalLogic.CreateGoal.WritingGoalStore.Create", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (l *GoalLogic) ListGoals() ([]types.WritingGoal, error) {
	claims := l.GetUserInfo()

	list, err := l.core.Store().WritingGoalStore().List(l.ctx, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("GoalLogic.ListGoals.WritingGoalStore.List", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

func (l *GoalLogic) UpdateGoal(id string, targetWords int64, isActive bool) error {
	claims := l.GetUserInfo()

	if targetWords <= 0 {
		return errors.New("GoalLogic.UpdateGoal.target", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	goal, err := l.core.Store().WritingGoalStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("GoalLogic.UpdateGoal.WritingGoalStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if goal == nil {
		return errors.New("GoalLogic.UpdateGoal.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if isActive && !goal.IsActive {
			if err := l.core.Store().WritingGoalStore().DeactivateByPeriod(ctx, claims.User, goal.Period); err != nil {
				return errors.New("GoalLogic.UpdateGoal.WritingGoalStore.DeactivateByPeriod", i18n.ERROR_INTERNAL, err)
			}
		}
		if err := l.core.Store().WritingGoalStore().Update(ctx, claims.User, id, targetWords, isActive); err != nil {
			return errors.New("GoalLogic.UpdateGoal.WritingGoalStore.Update", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	return err
}

func (l *GoalLogic) DeleteGoal(id string) error {
	claims := l.GetUserInfo()

	if err := l.core.Store().WritingGoalStore().Delete(l.ctx, claims.User, id); err != nil {
		return errors.New("GoalLogic.DeleteGoal.WritingGoalStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// GoalProgress reports words written inside each active goal's current
// period against its target.
func (l *GoalLogic) GoalProgress() ([]types.GoalProgress, error) {
	claims := l.GetUserInfo()

	goals, err := l.core.Store().WritingGoalStore().ListActive(l.ctx, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("GoalLogic.GoalProgress.WritingGoalStore.ListActive", i18n.ERROR_INTERNAL, err)
	}

	now := time.Now()
	result := make([]types.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		since := stats.PeriodStart(goal.Period, now).Unix()
		written, err := l.core.Store().JournalEntryStore().SumWordsSince(l.ctx, claims.User, since)
		if err != nil {
			return nil, errors.New("GoalLogic.GoalProgress.JournalEntryStore.SumWordsSince", i18n.ERROR_INTERNAL, err)
		}

		percent := float64(0)
		if goal.TargetWords > 0 {
			percent = float64(written) / float64(goal.TargetWords) * 100
			if percent > 100 {
				percent = 100
			}
		}

		result = append(result, types.GoalProgress{
			WritingGoal:  goal,
			WrittenWords: written,
			Percent:      percent,
		})
	}
	return result, nil
}
