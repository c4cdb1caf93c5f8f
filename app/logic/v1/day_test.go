package v1_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/pkg/types"
)

func Test_ScoreDayOverwrites(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, "")

	logic := v1.NewDayLogic(ctx, core)
	date := time.Now().Format("2006-01-02")

	if err := logic.ScoreDay(date, 6, "fine day"); err != nil {
		t.Fatal(err)
	}
	if err := logic.ScoreDay(date, 9, "better in hindsight"); err != nil {
		t.Fatal(err)
	}

	scores, err := logic.GetDayScores(date, date)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, scores, 1)
	assert.Equal(t, 9, scores[0].Score)
	assert.Equal(t, "better in hindsight", scores[0].Note)
}

func Test_ScoreDayValidation(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, "")

	logic := v1.NewDayLogic(ctx, core)

	assert.Error(t, logic.ScoreDay("not-a-date", 5, ""))
	assert.Error(t, logic.ScoreDay(time.Now().Format("2006-01-02"), 0, ""))
	assert.Error(t, logic.ScoreDay(time.Now().Format("2006-01-02"), 11, ""))
}

func Test_DaySegments(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, "")

	logic := v1.NewDayLogic(ctx, core)
	date := time.Now().Format("2006-01-02")

	segment, err := logic.CreateSegment(v1.DaySegmentArgs{
		Date:      date,
		Title:     "deep work",
		StartTime: "09:00",
		EndTime:   "11:30",
		Category:  "work",
		Priority:  1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := logic.UpdateSegment(segment.ID, v1.DaySegmentArgs{
		Date:      date,
		Title:     "deep work (moved)",
		StartTime: "10:00",
		EndTime:   "12:30",
		Category:  "work",
		Priority:  1,
	}); err != nil {
		t.Fatal(err)
	}

	list, err := logic.ListSegments(date)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, list, 1)
	assert.Equal(t, "deep work (moved)", list[0].Title)
	assert.Equal(t, "10:00", list[0].StartTime)

	if err := logic.DeleteSegment(segment.ID); err != nil {
		t.Fatal(err)
	}
	list, err = logic.ListSegments(date)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, list, 0)
}

func Test_CountdownOrdering(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, "")

	logic := v1.NewCountdownLogic(ctx, core)
	now := time.Now()

	for _, event := range []v1.CountdownEventArgs{
		{Title: "far", TargetDate: now.AddDate(0, 0, 30).Format("2006-01-02")},
		{Title: "near", TargetDate: now.AddDate(0, 0, 3).Format("2006-01-02")},
		{Title: "gone", TargetDate: now.AddDate(0, 0, -5).Format("2006-01-02")},
	} {
		if _, err := logic.CreateEvent(event); err != nil {
			t.Fatal(err)
		}
	}

	views, err := logic.ListEvents()
	if err != nil {
		t.Fatal(err)
	}
	if !assert.Len(t, views, 3) {
		return
	}
	assert.Equal(t, "near", views[0].Title)
	assert.Equal(t, "far", views[1].Title)
	assert.Equal(t, "gone", views[2].Title)
	assert.True(t, views[2].IsPast)
}
