package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type CreateTemplateRequest struct {
	Name        string        `json:"name" form:"name" binding:"required,max=100"`
	Description string        `json:"description" form:"description" binding:"max=500"`
	Fields      types.JSONRaw `json:"fields" form:"fields" binding:"required"`
}

func (s *HttpSrv) CreateTemplate(c *gin.Context) {
	var (
		err error
		req CreateTemplateRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	template, err := v1.NewTemplateLogic(c, s.Core).CreateTemplate(v1.CreateTemplateArgs{
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, template)
}

func (s *HttpSrv) GetTemplate(c *gin.Context) {
	id, _ := c.Params.Get("id")

	template, err := v1.NewTemplateLogic(c, s.Core).GetTemplate(id)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, template)
}

func (s *HttpSrv) UpdateTemplate(c *gin.Context) {
	id, _ := c.Params.Get("id")

	var (
		err error
		req CreateTemplateRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewTemplateLogic(c, s.Core).UpdateTemplate(id, v1.CreateTemplateArgs{
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteTemplate(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewTemplateLogic(c, s.Core).DeleteTemplate(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type ListTemplatesRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

type ListTemplatesResponse struct {
	List  []types.JournalTemplate `json:"list"`
	Total int64                   `json:"total"`
}

func (s *HttpSrv) ListMyTemplates(c *gin.Context) {
	var (
		err error
		req ListTemplatesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, total, err := v1.NewTemplateLogic(c, s.Core).ListMyTemplates(req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListTemplatesResponse{List: list, Total: total})
}

type ListCommunityTemplatesRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
	Category string `json:"category" form:"category" binding:"max=50"`
}

func (s *HttpSrv) ListCommunityTemplates(c *gin.Context) {
	var (
		err error
		req ListCommunityTemplatesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, total, err := v1.NewTemplateLogic(c, s.Core).ListCommunityTemplates(req.Category, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListTemplatesResponse{List: list, Total: total})
}

type ShareTemplateRequest struct {
	Category string   `json:"category" form:"category" binding:"max=50"`
	Tags     []string `json:"tags" form:"tags" binding:"max=10"`
}

func (s *HttpSrv) ShareTemplate(c *gin.Context) {
	id, _ := c.Params.Get("id")

	var (
		err error
		req ShareTemplateRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewTemplateLogic(c, s.Core).ShareTemplate(id, req.Category, req.Tags); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) UnshareTemplate(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewTemplateLogic(c, s.Core).UnshareTemplate(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) LikeTemplate(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewTemplateLogic(c, s.Core).LikeTemplate(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type FeatureTemplateRequest struct {
	Featured *bool `json:"featured" form:"featured" binding:"required"`
}

func (s *HttpSrv) FeatureTemplate(c *gin.Context) {
	id, _ := c.Params.Get("id")

	var (
		err error
		req FeatureTemplateRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewTemplateLogic(c, s.Core).FeatureTemplate(id, *req.Featured); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
