package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/security"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

// logic for unlogin
type UserLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	l := &UserLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *UserLogic) Register(appid, name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return "", errors.New("UserLogic.Register.email.exist", i18n.ERROR_EMAIL_ALREADY_REGISTED, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(10)
	userID := utils.GenUniqIDStr()

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		err := l.core.Store().UserStore().Create(ctx, types.User{
			ID:        userID,
			Appid:     appid,
			Name:      name,
			Email:     email,
			Salt:      salt,
			Source:    types.USER_SOURCE_EMAIL,
			Role:      types.USER_ROLE_MEMBER,
			PlanID:    types.PLAN_FREE,
			Password:  utils.GenUserPassword(salt, password),
			UpdatedAt: time.Now().Unix(),
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return errors.New("UserLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
		}

		err = l.core.Store().UsageStatsStore().Create(ctx, types.UsageStats{
			UserID:    userID,
			UpdatedAt: time.Now().Unix(),
		})
		if err != nil {
			return errors.New("UserLogic.Register.UsageStatsStore.Create", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})

	if err != nil {
		return "", err
	}

	return userID, nil
}

func (l *UserLogic) Login(appid, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Login.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}

	if user == nil || user.Password != utils.GenUserPassword(user.Salt, password) {
		return "", errors.New("UserLogic.Login.Password.check", i18n.ERROR_INVALID_ACCOUNT, err).Code(http.StatusBadRequest)
	}

	claims := security.NewTokenClaims(appid, l.core.DefaultAppid(), user.ID, user.PlanID, user.Role,
		time.Now().Add(l.core.TokenExpire()).Unix())
	token, err := security.GenerateJWT(claims, []byte(l.core.Cfg().Security.JWTSecret))
	if err != nil {
		return "", errors.New("UserLogic.Login.GenerateJWT", i18n.ERROR_INTERNAL, err)
	}

	return token, nil
}

type UserBaseInfo struct {
	ID        string `json:"id"`
	Appid     string `json:"appid"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PlanID    string `json:"plan_id"`
	CreatedAt int64  `json:"created_at"`
}

func (l *UserLogic) GetUser(appid, id string) (*UserBaseInfo, error) {
	user, err := l.core.Store().UserStore().GetUser(l.ctx, appid, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return nil, errors.New("UserLogic.GetUser.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	return &UserBaseInfo{
		ID:        user.ID,
		Appid:     user.Appid,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Email:     user.Email,
		Role:      user.Role,
		PlanID:    user.PlanID,
		CreatedAt: user.CreatedAt,
	}, nil
}

type AuthedUserLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAuthedUserLogic(ctx context.Context, core *core.Core) *AuthedUserLogic {
	l := &AuthedUserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
	return l
}

func (l *AuthedUserLogic) Profile() (*UserBaseInfo, error) {
	claims := l.GetUserInfo()
	return NewUserLogic(l.ctx, l.core).GetUser(claims.Appid, claims.User)
}

func (l *AuthedUserLogic) UpdateUserProfile(userName, avatar string) error {
	claims := l.GetUserInfo()
	err := l.core.Store().UserStore().UpdateUserProfile(l.ctx, claims.Appid, claims.User, userName, avatar)
	if err != nil {
		return errors.New("AuthedUserLogic.UpdateUserProfile.UserStore.UpdateUserProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
