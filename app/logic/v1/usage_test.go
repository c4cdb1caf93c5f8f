package v1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/pkg/types"
)

func Test_EntryQuotaRejectsAtLimit(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, types.USER_ROLE_MEMBER)

	limits := types.LimitsForPlan(types.PLAN_FREE)
	if err := core.Store().UsageStatsStore().Set(context.Background(), userID, limits.MaxEntries, 0); err != nil {
		t.Fatal(err)
	}

	logic := v1.NewUsageLogic(ctx, core)
	err := logic.CheckEntryQuota(userID, types.PLAN_FREE)
	assert.Error(t, err)

	// the same counter is fine on a bigger plan
	err = logic.CheckEntryQuota(userID, types.PLAN_PRO)
	assert.NoError(t, err)

	_, err = v1.NewEntryLogic(ctx, core).CreateEntry(v1.CreateEntryArgs{
		Title:   "over the cap",
		Content: "should not be stored",
	})
	assert.Error(t, err)
}

func Test_TemplateQuotaRejectsAtLimit(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, types.USER_ROLE_MEMBER)

	limits := types.LimitsForPlan(types.PLAN_FREE)
	if err := core.Store().UsageStatsStore().Set(context.Background(), userID, 0, limits.MaxTemplates); err != nil {
		t.Fatal(err)
	}

	_, err := v1.NewTemplateLogic(ctx, core).CreateTemplate(v1.CreateTemplateArgs{
		Name: "over the cap",
	})
	assert.Error(t, err)
}
