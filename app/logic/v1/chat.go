package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/ai/tools"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

const (
	// maxToolIterations bounds the tool dispatch loop so a misbehaving model
	// cannot spin forever.
	maxToolIterations = 5
	historyWindow     = 20

	assistantSystemPrompt = "You are DayGo's journaling assistant. You help the user reflect on their journal, " +
		"answer questions about their own entries, and handle small utility requests. " +
		"Use the available tools when they fit the question."
)

type ChatLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// SendMessage stores the user's message, runs the assistant with tool
// dispatch, and stores and returns the assistant's reply.
func (l *ChatLogic) SendMessage(sessionID, content string) (*types.ChatMessage, error) {
	claims := l.GetUserInfo()

	session, err := l.core.Store().ChatSessionStore().Get(l.ctx, claims.User, sessionID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ChatLogic.SendMessage.ChatSessionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if session == nil {
		return nil, errors.New("ChatLogic.SendMessage.notfound", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	seq, err := l.nextSequence(sessionID)
	if err != nil {
		return nil, err
	}

	userMsg := types.ChatMessage{
		ID:        utils.GenUniqIDStr(),
		SessionID: sessionID,
		UserID:    claims.User,
		Role:      types.USER_ROLE_USER_MESSAGE,
		Message:   content,
		Sequence:  seq,
		SendTime:  time.Now().Unix(),
	}
	if err := l.core.Store().ChatMessageStore().Create(l.ctx, userMsg); err != nil {
		return nil, errors.New("ChatLogic.SendMessage.ChatMessageStore.Create", i18n.ERROR_INTERNAL, err)
	}

	history, err := l.buildHistory(sessionID)
	if err != nil {
		return nil, err
	}

	reply, err := l.requestAssistant(history)
	if err != nil {
		l.core.Metrics().AIErrorInc("chat")
		return nil, err
	}

	assistantMsg := types.ChatMessage{
		ID:        utils.GenUniqIDStr(),
		SessionID: sessionID,
		UserID:    claims.User,
		Role:      types.USER_ROLE_ASSISTANT_MESSAGE,
		Message:   reply,
		Sequence:  seq + 1,
		SendTime:  time.Now().Unix(),
	}
	if err := l.core.Store().ChatMessageStore().Create(l.ctx, assistantMsg); err != nil {
		return nil, errors.New("ChatLogic.SendMessage.ChatMessageStore.CreateReply", i18n.ERROR_INTERNAL, err)
	}

	if err := l.core.Store().ChatSessionStore().UpdateLatestAccessTime(l.ctx, sessionID); err != nil {
		return nil, errors.New("ChatLogic.SendMessage.ChatSessionStore.UpdateLatestAccessTime", i18n.ERROR_INTERNAL, err)
	}

	return &assistantMsg, nil
}

func (l *ChatLogic) nextSequence(sessionID string) (int64, error) {
	latest, err := l.core.Store().ChatMessageStore().GetSessionLatestMessage(l.ctx, sessionID)
	if err != nil && err != sql.ErrNoRows {
		return 0, errors.New("ChatLogic.nextSequence.ChatMessageStore.GetSessionLatestMessage", i18n.ERROR_INTERNAL, err)
	}
	if latest == nil {
		return 1, nil
	}
	return latest.Sequence + 1, nil
}

// buildHistory converts the recent conversation into model messages. Stored
// tool results are replayed as user-invisible context only through the
// assistant turns that consumed them, so they are skipped here.
func (l *ChatLogic) buildHistory(sessionID string) ([]openai.ChatCompletionMessage, error) {
	list, err := l.core.Store().ChatMessageStore().ListSessionMessage(l.ctx, sessionID, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ChatLogic.buildHistory.ChatMessageStore.ListSessionMessage", i18n.ERROR_INTERNAL, err)
	}

	if len(list) > historyWindow {
		list = list[len(list)-historyWindow:]
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
	}
	for _, msg := range list {
		switch msg.Role {
		case types.USER_ROLE_USER_MESSAGE:
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: msg.Message,
			})
		case types.USER_ROLE_ASSISTANT_MESSAGE:
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: msg.Message,
			})
		}
	}
	return messages, nil
}

// requestAssistant runs the completion loop. When the model requests tools,
// each call is dispatched locally and the results are fed back until the
// model answers in plain text or the iteration cap is hit.
func (l *ChatLogic) requestAssistant(messages []openai.ChatCompletionMessage) (string, error) {
	timer := l.core.Metrics().AIRequestTimer("chat")
	defer timer.ObserveDuration()

	for i := 0; i < maxToolIterations; i++ {
		resp, err := l.core.AI().Chat(l.ctx, messages, tools.FunctionDefine)
		if err != nil {
			return "", errors.New("ChatLogic.requestAssistant.Chat", i18n.ERROR_INTERNAL, err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("ChatLogic.requestAssistant.empty", i18n.ERROR_INTERNAL, nil)
		}

		choice := resp.Choices[0].Message
		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		messages = append(messages, choice)
		for _, call := range choice.ToolCalls {
			result := l.dispatchTool(call)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	return "", errors.New("ChatLogic.requestAssistant.iterations", i18n.ERROR_INTERNAL, nil)
}
