package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/pkg/types"
)

func Test_TemplateShareAndLike(t *testing.T) {
	core := NewCore(t)
	author := registerTestUser(t, core)
	reader := registerTestUser(t, core)

	authorLogic := v1.NewTemplateLogic(NewAuthedContext(author, types.PLAN_FREE, types.USER_ROLE_MEMBER), core)

	template, err := authorLogic.CreateTemplate(v1.CreateTemplateArgs{
		Name:        "Gratitude journal",
		Description: "three things every evening",
	})
	if err != nil {
		t.Fatal(err)
	}

	readerLogic := v1.NewTemplateLogic(NewAuthedContext(reader, types.PLAN_FREE, types.USER_ROLE_MEMBER), core)

	// private templates are invisible to everyone else
	_, err = readerLogic.GetTemplate(template.ID)
	assert.Error(t, err)
	err = readerLogic.LikeTemplate(template.ID)
	assert.Error(t, err)

	if err = authorLogic.ShareTemplate(template.ID, "wellness", []string{"gratitude"}); err != nil {
		t.Fatal(err)
	}

	shared, err := readerLogic.GetTemplate(template.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, shared.IsPublic)
	assert.Equal(t, "wellness", shared.Category)

	if err = readerLogic.LikeTemplate(template.ID); err != nil {
		t.Fatal(err)
	}

	// liking twice is rejected
	err = readerLogic.LikeTemplate(template.ID)
	assert.Error(t, err)

	liked, err := readerLogic.GetTemplate(template.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int64(1), liked.Likes)
}

func Test_FeatureTemplateRequiresAdmin(t *testing.T) {
	core := NewCore(t)
	author := registerTestUser(t, core)

	authorLogic := v1.NewTemplateLogic(NewAuthedContext(author, types.PLAN_FREE, types.USER_ROLE_MEMBER), core)

	template, err := authorLogic.CreateTemplate(v1.CreateTemplateArgs{Name: "Daily recap"})
	if err != nil {
		t.Fatal(err)
	}
	if err = authorLogic.ShareTemplate(template.ID, "general", nil); err != nil {
		t.Fatal(err)
	}

	err = authorLogic.FeatureTemplate(template.ID, true)
	assert.Error(t, err)

	adminLogic := v1.NewTemplateLogic(NewAuthedContext(author, types.PLAN_FREE, types.USER_ROLE_ADMIN), core)
	err = adminLogic.FeatureTemplate(template.ID, true)
	assert.NoError(t, err)
}
