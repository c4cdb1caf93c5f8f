package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type CreateChatSessionRequest struct {
	Title string `json:"title" form:"title" binding:"max=100"`
}

func (s *HttpSrv) CreateChatSession(c *gin.Context) {
	var (
		err error
		req CreateChatSessionRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	session, err := v1.NewChatSessionLogic(c, s.Core).CreateSession(req.Title)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, session)
}

type ListChatSessionsRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

type ListChatSessionsResponse struct {
	List []types.ChatSession `json:"list"`
}

func (s *HttpSrv) ListChatSessions(c *gin.Context) {
	var (
		err error
		req ListChatSessionsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewChatSessionLogic(c, s.Core).ListSessions(req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListChatSessionsResponse{List: list})
}

func (s *HttpSrv) DeleteChatSession(c *gin.Context) {
	sessionID, _ := c.Params.Get("session")

	if err := v1.NewChatSessionLogic(c, s.Core).DeleteSession(sessionID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type ListChatMessagesRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=100"`
}

type ListChatMessagesResponse struct {
	List []types.ChatMessage `json:"list"`
}

func (s *HttpSrv) ListChatMessages(c *gin.Context) {
	sessionID, _ := c.Params.Get("session")

	var (
		err error
		req ListChatMessagesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewChatSessionLogic(c, s.Core).ListMessages(sessionID, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListChatMessagesResponse{List: list})
}

type SendChatMessageRequest struct {
	Content string `json:"content" form:"content" binding:"required,max=4000"`
}

func (s *HttpSrv) SendChatMessage(c *gin.Context) {
	sessionID, _ := c.Params.Get("session")

	var (
		err error
		req SendChatMessageRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	reply, err := v1.NewChatLogic(c, s.Core).SendMessage(sessionID, req.Content)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, reply)
}
