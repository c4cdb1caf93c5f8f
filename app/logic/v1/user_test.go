package v1_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daygo-app/daygo/app/core"
	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/pkg/security"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

func NewCore(t *testing.T) *core.Core {
	if os.Getenv("TEST_CONFIG_PATH") == "" {
		t.Skip("TEST_CONFIG_PATH not set")
	}
	return core.MustSetupCore(core.MustLoadBaseConfig(os.Getenv("TEST_CONFIG_PATH")))
}

// NewAuthedContext builds a context carrying token claims, the same shape
// the authorization middleware injects.
func NewAuthedContext(userID, planID, role string) context.Context {
	claims := security.NewTokenClaims(types.DEFAULT_APPID, types.DEFAULT_APPID, userID, planID, role, time.Now().Add(time.Hour).Unix())
	ctx := context.WithValue(context.Background(), v1.APPID_KEY, types.DEFAULT_APPID)
	return context.WithValue(ctx, v1.TOKEN_CONTEXT_KEY, claims)
}

func registerTestUser(t *testing.T, core *core.Core) string {
	logic := v1.NewUserLogic(context.Background(), core)

	email := fmt.Sprintf("test-%s@example.com", utils.RandomStr(8))
	userID, err := logic.Register(core.DefaultAppid(), "test user", email, "testpwd123")
	if err != nil {
		t.Fatal(err)
	}
	return userID
}

func Test_UserRegisterAndLogin(t *testing.T) {
	core := NewCore(t)
	logic := v1.NewUserLogic(context.Background(), core)

	email := fmt.Sprintf("test-%s@example.com", utils.RandomStr(8))
	userID, err := logic.Register(core.DefaultAppid(), "tester", email, "testpwd123")
	if err != nil {
		t.Fatal(err)
	}

	user, err := logic.GetUser(core.DefaultAppid(), userID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "tester", user.Name)
	assert.Equal(t, types.PLAN_FREE, user.PlanID)

	token, err := logic.Login(core.DefaultAppid(), email, "testpwd123")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := security.VerifyToken(token, []byte(core.Cfg().Security.JWTSecret))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, userID, claims.GetUser())
}

func Test_LoginWrongPassword(t *testing.T) {
	core := NewCore(t)
	logic := v1.NewUserLogic(context.Background(), core)

	email := fmt.Sprintf("test-%s@example.com", utils.RandomStr(8))
	if _, err := logic.Register(core.DefaultAppid(), "tester", email, "testpwd123"); err != nil {
		t.Fatal(err)
	}

	_, err := logic.Login(core.DefaultAppid(), email, "wrongpwd")
	assert.Error(t, err)
}

func Test_RegisterDuplicateEmail(t *testing.T) {
	core := NewCore(t)
	logic := v1.NewUserLogic(context.Background(), core)

	email := fmt.Sprintf("test-%s@example.com", utils.RandomStr(8))
	if _, err := logic.Register(core.DefaultAppid(), "tester", email, "testpwd123"); err != nil {
		t.Fatal(err)
	}

	_, err := logic.Register(core.DefaultAppid(), "tester", email, "testpwd123")
	assert.Error(t, err)
}
