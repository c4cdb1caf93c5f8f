package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/pkg/types"
)

func Test_CreateGoalValidation(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	logic := v1.NewGoalLogic(NewAuthedContext(userID, types.PLAN_FREE, types.USER_ROLE_MEMBER), core)

	_, err := logic.CreateGoal(500, "hourly")
	assert.Error(t, err)

	_, err = logic.CreateGoal(0, types.GOAL_PERIOD_DAILY)
	assert.Error(t, err)
}

func Test_OneActiveGoalPerPeriod(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	logic := v1.NewGoalLogic(NewAuthedContext(userID, types.PLAN_FREE, types.USER_ROLE_MEMBER), core)

	first, err := logic.CreateGoal(500, types.GOAL_PERIOD_DAILY)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, first.IsActive)

	second, err := logic.CreateGoal(800, types.GOAL_PERIOD_DAILY)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, second.IsActive)

	goals, err := logic.ListGoals()
	if err != nil {
		t.Fatal(err)
	}

	activeDaily := 0
	for _, goal := range goals {
		if goal.Period == types.GOAL_PERIOD_DAILY && goal.IsActive {
			activeDaily++
			assert.Equal(t, second.ID, goal.ID)
		}
	}
	assert.Equal(t, 1, activeDaily)
}
