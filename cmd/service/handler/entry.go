package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type CreateEntryRequest struct {
	Title       string        `json:"title" form:"title" binding:"required,max=200"`
	Content     string        `json:"content" form:"content" binding:"required"`
	TemplateID  string        `json:"template_id" form:"template_id"`
	FieldValues types.JSONRaw `json:"field_values" form:"field_values"`
}

func (s *HttpSrv) CreateEntry(c *gin.Context) {
	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewEntryLogic(c, s.Core).CreateEntry(v1.CreateEntryArgs{
		Title:       req.Title,
		Content:     req.Content,
		TemplateID:  req.TemplateID,
		FieldValues: req.FieldValues,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, entry)
}

func (s *HttpSrv) GetEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	entry, err := v1.NewEntryLogic(c, s.Core).GetEntry(id)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, entry)
}

func (s *HttpSrv) UpdateEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewEntryLogic(c, s.Core).UpdateEntry(id, v1.CreateEntryArgs{
		Title:       req.Title,
		Content:     req.Content,
		TemplateID:  req.TemplateID,
		FieldValues: req.FieldValues,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewEntryLogic(c, s.Core).DeleteEntry(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type ListEntriesRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

type ListEntriesResponse struct {
	List  []types.JournalEntry `json:"list"`
	Total int64                `json:"total"`
}

func (s *HttpSrv) ListEntries(c *gin.Context) {
	var (
		err error
		req ListEntriesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, total, err := v1.NewEntryLogic(c, s.Core).ListEntries(req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListEntriesResponse{List: list, Total: total})
}

type SearchEntriesRequest struct {
	Query string `json:"query" form:"query" binding:"required,max=200"`
	Limit int    `json:"limit" form:"limit" binding:"max=50"`
}

type SearchEntriesResponse struct {
	List []v1.SearchResult `json:"list"`
}

func (s *HttpSrv) SearchEntries(c *gin.Context) {
	var (
		err error
		req SearchEntriesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewEntryLogic(c, s.Core).SearchEntries(req.Query, req.Limit)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, SearchEntriesResponse{List: list})
}
