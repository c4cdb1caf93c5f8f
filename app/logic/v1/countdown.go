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
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

const DATE_LAYOUT = "2006-01-02"

type CountdownLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewCountdownLogic(ctx context.Context, core *core.Core) *CountdownLogic {
	return &CountdownLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CountdownEventArgs struct {
	Title      string
	TargetDate string
	Category   string
	Priority   int
}

func (l *CountdownLogic) CreateEvent(args CountdownEventArgs) (*types.CountdownEvent, error) {
	claims := l.GetUserInfo()

	if _, err := time.Parse(DATE_LAYOUT, args.TargetDate); err != nil {
		return nil, errors.New("CountdownLogic.CreateEvent.date", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	event := types.CountdownEvent{
		ID:         utils.GenUniqIDStr(),
		UserID:     claims.User,
		Title:      args.Title,
		TargetDate: args.TargetDate,
		Category:   args.Category,
		Priority:   args.Priority,
		CreatedAt:  time.Now().Unix(),
		UpdatedAt:  time.Now().Unix(),
	}

	if err := l.core.Store().CountdownEventStore().Create(l.ctx, event); err != nil {
		return nil, errors.New("CountdownLogic.CreateEvent.CountdownEventStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &event, nil
}

func (l *CountdownLogic) UpdateEvent(id string, args CountdownEventArgs) error {
	claims := l.GetUserInfo()

	if _, err := time.Parse(DATE_LAYOUT, args.TargetDate); err != nil {
		return errors.New("CountdownLogic.UpdateEvent.date", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}

	event, err := l.core.Store().CountdownEventStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("CountdownLogic.UpdateEvent.CountdownEventStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if event == nil {
		return errors.New("CountdownLogic.UpdateEvent.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	event.Title = args.Title
	event.TargetDate = args.TargetDate
	event.Category = args.Category
	event.Priority = args.Priority
	event.UpdatedAt = time.Now().Unix()

	if err := l.core.Store().CountdownEventStore().Update(l.ctx, claims.User, id, *event); err != nil {
		return errors.New("CountdownLogic.UpdateEvent.CountdownEventStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *CountdownLogic) DeleteEvent(id string) error {
	claims := l.GetUserInfo()

	if err := l.core.Store().CountdownEventStore().Delete(l.ctx, claims.User, id); err != nil {
		return errors.New("CountdownLogic.DeleteEvent.CountdownEventStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// ListEvents returns upcoming events ordered nearest-first, then past ones
// most-recent-first.
func (l *CountdownLogic) ListEvents() ([]types.CountdownEventView, error) {
	claims := l.GetUserInfo()

	list, err := l.core.Store().CountdownEventStore().List(l.ctx, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("CountdownLogic.ListEvents.CountdownEventStore.List", i18n.ERROR_INTERNAL, err)
	}

	today, _ := time.Parse(DATE_LAYOUT, time.Now().Format(DATE_LAYOUT))

	views := make([]types.CountdownEventView, 0, len(list))
	for _, event := range list {
		target, err := time.Parse(DATE_LAYOUT, event.TargetDate)
		if err != nil {
			continue
		}
		days := int64(target.Sub(today).Hours() / 24)
		views = append(views, types.CountdownEventView{
			CountdownEvent: event,
			IsPast:         days < 0,
			DaysLeft:       days,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.IsPast != b.IsPast {
			return !a.IsPast
		}
		if a.IsPast {
			return a.DaysLeft > b.DaysLeft
		}
		return a.DaysLeft < b.DaysLeft
	})

	return views, nil
}
