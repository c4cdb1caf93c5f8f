package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

const (
	MAX_ACCESS_TOKENS   = 10
	tokenCacheKeyFormat = "user:token:%s"
	tokenCacheTTL       = time.Minute * 10
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	l := &AuthLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

// GetAccessTokenDetail resolves an API token, shielding the token table with
// a short redis cache.
func (l *AuthLogic) GetAccessTokenDetail(appid, token string) (*types.UserTokenMeta, error) {
	cacheKey := fmt.Sprintf(tokenCacheKeyFormat, utils.MD5(token))
	cached, err := l.core.Cache().Get(l.ctx, cacheKey)
	if err != nil && err != redis.Nil {
		return nil, errors.New("AuthLogic.GetAccessTokenDetail.Cache.Get", i18n.ERROR_INTERNAL, err)
	}
	if cached != "" {
		var meta types.UserTokenMeta
		if err := json.Unmarshal([]byte(cached), &meta); err == nil {
			return &meta, nil
		}
	}

	data, err := l.core.Store().AccessTokenStore().GetAccessToken(l.ctx, appid, token)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.GetAccessTokenDetail.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
	}
	if data == nil {
		return nil, nil
	}

	user, err := l.core.Store().UserStore().GetUser(l.ctx, appid, data.UserID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.GetAccessTokenDetail.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return nil, nil
	}

	meta := &types.UserTokenMeta{
		Appid:     data.Appid,
		UserID:    data.UserID,
		PlanID:    user.PlanID,
		Role:      user.Role,
		ExpiresAt: data.ExpiresAt,
	}

	if raw, err := json.Marshal(meta); err == nil {
		// cache miss on failure is fine
		_ = l.core.Cache().SetEx(l.ctx, cacheKey, string(raw), tokenCacheTTL)
	}

	return meta, nil
}

type AuthedAuthLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAuthedAuthLogic(ctx context.Context, core *core.Core) *AuthedAuthLogic {
	return &AuthedAuthLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *AuthedAuthLogic) CreateAccessToken(info string) (string, error) {
	claims := l.GetUserInfo()

	list, err := l.core.Store().AccessTokenStore().ListAccessTokens(l.ctx, claims.Appid, claims.User, 1, MAX_ACCESS_TOKENS+1)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("AuthedAuthLogic.CreateAccessToken.AccessTokenStore.ListAccessTokens", i18n.ERROR_INTERNAL, err)
	}
	if len(list) >= MAX_ACCESS_TOKENS {
		return "", errors.New("AuthedAuthLogic.CreateAccessToken.limit", i18n.ERROR_FORBIDDEN, nil).Code(http.StatusForbidden)
	}

	token := utils.RandomStr(64)
	err = l.core.Store().AccessTokenStore().Create(l.ctx, types.AccessToken{
		UserID:    claims.User,
		Appid:     claims.Appid,
		Info:      info,
		Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
		Token:     token,
		ExpiresAt: time.Now().AddDate(10, 0, 0).Unix(),
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", errors.New("AuthedAuthLogic.CreateAccessToken.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return token, nil
}

func (l *AuthedAuthLogic) GetAccessTokens(page, pageSize uint64) ([]types.AccessToken, error) {
	claims := l.GetUserInfo()
	list, err := l.core.Store().AccessTokenStore().ListAccessTokens(l.ctx, claims.Appid, claims.User, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthedAuthLogic.GetAccessTokens.AccessTokenStore.ListAccessTokens", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

func (l *AuthedAuthLogic) DelAccessToken(id int64) error {
	claims := l.GetUserInfo()
	err := l.core.Store().AccessTokenStore().Delete(l.ctx, claims.Appid, claims.User, id)
	if err != nil {
		return errors.New("AuthedAuthLogic.DelAccessToken.AccessTokenStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
