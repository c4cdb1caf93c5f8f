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

const (
	DAY_SCORE_MIN = 1
	DAY_SCORE_MAX = 10
)

// DayLogic covers day scoring and time-block planning.
type DayLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewDayLogic(ctx context.Context, core *core.Core) *DayLogic {
	return &DayLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// ScoreDay records the caller's rating for one calendar date. Re-scoring the
// same date overwrites the previous rating.
func (l *DayLogic) ScoreDay(date string, score int, note string) error {
	claims := l.GetUserInfo()

	if _, err := time.Parse(DATE_LAYOUT, date); err != nil {
		return errors.New("DayLogic.ScoreDay.date", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	if score < DAY_SCORE_MIN || score > DAY_SCORE_MAX {
		return errors.New("DayLogic.ScoreDay.score", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	err := l.core.Store().DayScoreStore().Upsert(l.ctx, types.DayScore{
		ID:        utils.GenUniqIDStr(),
		UserID:    claims.User,
		Date:      date,
		Score:     score,
		Note:      note,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	})
	if err != nil {
		return errors.New("DayLogic.ScoreDay.DayScoreStore.Upsert", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *DayLogic) GetDayScores(from, to string) ([]types.DayScore, error) {
	claims := l.GetUserInfo()

	if _, err := time.Parse(DATE_LAYOUT, from); err != nil {
		return nil, errors.New("DayLogic.GetDayScores.from", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	if _, err := time.Parse(DATE_LAYOUT, to); err != nil {
		return nil, errors.New("DayLogic.GetDayScores.to", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	list, err := l.core.Store().DayScoreStore().ListRange(l.ctx, claims.User, from, to)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("DayLogic.GetDayScores.DayScoreStore.ListRange", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

type DaySegmentArgs struct {
	Date      string
	Title     string
	StartTime string
	EndTime   string
	Category  string
	Priority  int
}

func (l *DayLogic) CreateSegment(args DaySegmentArgs) (*types.DaySegment, error) {
	claims := l.GetUserInfo()

	if _, err := time.Parse(DATE_LAYOUT, args.Date); err != nil {
		return nil, errors.New("DayLogic.CreateSegment.date", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	segment := types.DaySegment{
		ID:        utils.GenUniqIDStr(),
		UserID:    claims.User,
		Date:      args.Date,
		Title:     args.Title,
		StartTime: args.StartTime,
		EndTime:   args.EndTime,
		Category:  args.Category,
		Priority:  args.Priority,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}

	if err := l.core.Store().DaySegmentStore().Create(l.ctx, segment); err != nil {
		return nil, errors.New("DayLogic.CreateSegment.DaySegmentStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &segment, nil
}

func (l *DayLogic) UpdateSegment(id string, args DaySegmentArgs) error {
	claims := l.GetUserInfo()

	segment, err := l.core.Store().DaySegmentStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("DayLogic.UpdateSegment.DaySegmentStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if segment == nil {
		return errors.New("DayLogic.UpdateSegment.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	segment.Title = args.Title
	segment.StartTime = args.StartTime
	segment.EndTime = args.EndTime
	segment.Category = args.Category
	segment.Priority = args.Priority
	segment.UpdatedAt = time.Now().Unix()

	if err := l.core.Store().DaySegmentStore().Update(l.ctx, claims.User, id, *segment); err != nil {
		return errors.New("DayLogic.UpdateSegment.DaySegmentStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *DayLogic) DeleteSegment(id string) error {
	claims := l.GetUserInfo()

	if err := l.core.Store().DaySegmentStore().Delete(l.ctx, claims.User, id); err != nil {
		return errors.New("DayLogic.DeleteSegment.DaySegmentStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *DayLogic) ListSegments(date string) ([]types.DaySegment, error) {
	claims := l.GetUserInfo()

	if _, err := time.Parse(DATE_LAYOUT, date); err != nil {
		return nil, errors.New("DayLogic.ListSegments.date", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	list, err := l.core.Store().DaySegmentStore().ListByDate(l.ctx, claims.User, date)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("DayLogic.ListSegments.DaySegmentStore.ListByDate", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}
