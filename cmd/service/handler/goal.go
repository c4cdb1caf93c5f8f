package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type CreateGoalRequest struct {
	TargetWords int64  `json:"target_words" form:"target_words" binding:"required,min=1"`
	Period      string `json:"period" form:"period" binding:"required"`
}

func (s *HttpSrv) CreateGoal(c *gin.Context) {
	var (
		err error
		req CreateGoalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	goal, err := v1.NewGoalLogic(c, s.Core).CreateGoal(req.TargetWords, req.Period)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, goal)
}

type ListGoalsResponse struct {
	List []types.WritingGoal `json:"list"`
}

func (s *HttpSrv) ListGoals(c *gin.Context) {
	list, err := v1.NewGoalLogic(c, s.Core).ListGoals()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListGoalsResponse{List: list})
}

type UpdateGoalRequest struct {
	TargetWords int64 `json:"target_words" form:"target_words" binding:"required,min=1"`
	IsActive    *bool `json:"is_active" form:"is_active" binding:"required"`
}

func (s *HttpSrv) UpdateGoal(c *gin.Context) {
	id, _ := c.Params.Get("id")

	var (
		err error
		req UpdateGoalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewGoalLogic(c, s.Core).UpdateGoal(id, req.TargetWords, *req.IsActive); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteGoal(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewGoalLogic(c, s.Core).DeleteGoal(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type GoalProgressResponse struct {
	List []types.GoalProgress `json:"list"`
}

func (s *HttpSrv) GoalProgress(c *gin.Context) {
	list, err := v1.NewGoalLogic(c, s.Core).GoalProgress()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, GoalProgressResponse{List: list})
}
