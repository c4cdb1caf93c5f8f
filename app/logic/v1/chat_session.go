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

type ChatSessionLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewChatSessionLogic(ctx context.Context, core *core.Core) *ChatSessionLogic {
	return &ChatSessionLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *ChatSessionLogic) CreateSession(title string) (*types.ChatSession, error) {
	claims := l.GetUserInfo()

	if title == "" {
		title = "New conversation"
	}

	session := types.ChatSession{
		ID:               utils.GenUniqIDStr(),
		UserID:           claims.User,
		Title:            title,
		CreatedAt:        time.Now().Unix(),
		LatestAccessTime: time.Now().Unix(),
	}

	if err := l.core.Store().ChatSessionStore().Create(l.ctx, session); err != nil {
		return nil, errors.New("ChatSessionLogic.CreateSession.ChatSessionStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &session, nil
}

func (l *ChatSessionLogic) ListSessions(page, pageSize uint64) ([]types.ChatSession, error) {
	claims := l.GetUserInfo()

	list, err := l.core.Store().ChatSessionStore().List(l.ctx, claims.User, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ChatSessionLogic.ListSessions.ChatSessionStore.List", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

func (l *ChatSessionLogic) GetSession(id string) (*types.ChatSession, error) {
	claims := l.GetUserInfo()

	session, err := l.core.Store().ChatSessionStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ChatSessionLogic.GetSession.ChatSessionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if session == nil {
		return nil, errors.New("ChatSessionLogic.GetSession.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	return session, nil
}

func (l *ChatSessionLogic) DeleteSession(id string) error {
	claims := l.GetUserInfo()

	session, err := l.core.Store().ChatSessionStore().Get(l.ctx, claims.User, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("ChatSessionLogic.DeleteSession.ChatSessionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if session == nil {
		return errors.New("ChatSessionLogic.DeleteSession.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().ChatSessionStore().Delete(ctx, claims.User, id); err != nil {
			return errors.New("ChatSessionLogic.DeleteSession.ChatSessionStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().ChatMessageStore().DeleteAll(ctx, id); err != nil {
			return errors.New("ChatSessionLogic.DeleteSession.ChatMessageStore.DeleteAll", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}

func (l *ChatSessionLogic) ListMessages(sessionID string, page, pageSize uint64) ([]types.ChatMessage, error) {
	if _, err := l.GetSession(sessionID); err != nil {
		return nil, err
	}

	list, err := l.core.Store().ChatMessageStore().ListSessionMessage(l.ctx, sessionID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ChatSessionLogic.ListMessages.ChatMessageStore.ListSessionMessage", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}
