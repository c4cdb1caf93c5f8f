package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/pkg/types"
)

func Test_EntryEncryptionRoundTrip(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, types.USER_ROLE_MEMBER)

	logic := v1.NewEntryLogic(ctx, core)

	content := "Today I went hiking and watched the sunset from the ridge."
	created, err := logic.CreateEntry(v1.CreateEntryArgs{
		Title:   "A good day",
		Content: content,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, content, created.Content)
	assert.Equal(t, int64(11), created.WordCount)

	got, err := logic.GetEntry(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, content, got.Content)
	assert.Equal(t, types.ENTRY_ENCRYPT_OFF, got.IsEncrypt)
}

func Test_EntryOwnership(t *testing.T) {
	core := NewCore(t)
	owner := registerTestUser(t, core)
	stranger := registerTestUser(t, core)

	created, err := v1.NewEntryLogic(NewAuthedContext(owner, types.PLAN_FREE, types.USER_ROLE_MEMBER), core).CreateEntry(v1.CreateEntryArgs{
		Title:   "private",
		Content: "nobody else should read this",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = v1.NewEntryLogic(NewAuthedContext(stranger, types.PLAN_FREE, types.USER_ROLE_MEMBER), core).GetEntry(created.ID)
	assert.Error(t, err)
}

func Test_SearchEntries(t *testing.T) {
	core := NewCore(t)
	userID := registerTestUser(t, core)
	ctx := NewAuthedContext(userID, types.PLAN_FREE, types.USER_ROLE_MEMBER)

	logic := v1.NewEntryLogic(ctx, core)

	seeds := []v1.CreateEntryArgs{
		{Title: "Morning run", Content: "Ran five kilometers before breakfast."},
		{Title: "Reading notes", Content: "Finished the chapter about distributed systems."},
		{Title: "Dinner", Content: "Cooked pasta with friends."},
	}
	for _, seed := range seeds {
		if _, err := logic.CreateEntry(seed); err != nil {
			t.Fatal(err)
		}
	}

	results, err := logic.SearchEntries("distributed systems", 10)
	if err != nil {
		t.Fatal(err)
	}
	if assert.NotEmpty(t, results) {
		assert.Equal(t, "Reading notes", results[0].Entry.Title)
		assert.Greater(t, results[0].Score, float64(0))
	}
}
