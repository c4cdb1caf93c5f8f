package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type CreateCountdownRequest struct {
	Title      string `json:"title" form:"title" binding:"required,max=100"`
	TargetDate string `json:"target_date" form:"target_date" binding:"required"`
	Category   string `json:"category" form:"category" binding:"max=50"`
	Priority   int    `json:"priority" form:"priority" binding:"min=0,max=10"`
}

func (s *HttpSrv) CreateCountdownEvent(c *gin.Context) {
	var (
		err error
		req CreateCountdownRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	event, err := v1.NewCountdownLogic(c, s.Core).CreateEvent(v1.CountdownEventArgs{
		Title:      req.Title,
		TargetDate: req.TargetDate,
		Category:   req.Category,
		Priority:   req.Priority,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, event)
}

func (s *HttpSrv) UpdateCountdownEvent(c *gin.Context) {
	id, _ := c.Params.Get("id")

	var (
		err error
		req CreateCountdownRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewCountdownLogic(c, s.Core).UpdateEvent(id, v1.CountdownEventArgs{
		Title:      req.Title,
		TargetDate: req.TargetDate,
		Category:   req.Category,
		Priority:   req.Priority,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteCountdownEvent(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewCountdownLogic(c, s.Core).DeleteEvent(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type ListCountdownEventsResponse struct {
	List []types.CountdownEventView `json:"list"`
}

func (s *HttpSrv) ListCountdownEvents(c *gin.Context) {
	list, err := v1.NewCountdownLogic(c, s.Core).ListEvents()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListCountdownEventsResponse{List: list})
}

type ScoreDayRequest struct {
	Date  string `json:"date" form:"date" binding:"required"`
	Score int    `json:"score" form:"score" binding:"required,min=1,max=10"`
	Note  string `json:"note" form:"note" binding:"max=500"`
}

func (s *HttpSrv) ScoreDay(c *gin.Context) {
	var (
		err error
		req ScoreDayRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewDayLogic(c, s.Core).ScoreDay(req.Date, req.Score, req.Note); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type GetDayScoresRequest struct {
	From string `json:"from" form:"from" binding:"required"`
	To   string `json:"to" form:"to" binding:"required"`
}

type GetDayScoresResponse struct {
	List []types.DayScore `json:"list"`
}

func (s *HttpSrv) GetDayScores(c *gin.Context) {
	var (
		err error
		req GetDayScoresRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewDayLogic(c, s.Core).GetDayScores(req.From, req.To)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, GetDayScoresResponse{List: list})
}

type DaySegmentRequest struct {
	Date      string `json:"date" form:"date" binding:"required"`
	Title     string `json:"title" form:"title" binding:"required,max=100"`
	StartTime string `json:"start_time" form:"start_time" binding:"required"`
	EndTime   string `json:"end_time" form:"end_time" binding:"required"`
	Category  string `json:"category" form:"category" binding:"max=50"`
	Priority  int    `json:"priority" form:"priority" binding:"min=0,max=10"`
}

func (s *HttpSrv) CreateDaySegment(c *gin.Context) {
	var (
		err error
		req DaySegmentRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	segment, err := v1.NewDayLogic(c, s.Core).CreateSegment(v1.DaySegmentArgs{
		Date:      req.Date,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  req.Category,
		Priority:  req.Priority,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, segment)
}

func (s *HttpSrv) UpdateDaySegment(c *gin.Context) {
	id, _ := c.Params.Get("id")

	var (
		err error
		req DaySegmentRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewDayLogic(c, s.Core).UpdateSegment(id, v1.DaySegmentArgs{
		Date:      req.Date,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  req.Category,
		Priority:  req.Priority,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteDaySegment(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewDayLogic(c, s.Core).DeleteSegment(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type ListDaySegmentsRequest struct {
	Date string `json:"date" form:"date" binding:"required"`
}

type ListDaySegmentsResponse struct {
	List []types.DaySegment `json:"list"`
}

func (s *HttpSrv) ListDaySegments(c *gin.Context) {
	var (
		err error
		req ListDaySegmentsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewDayLogic(c, s.Core).ListSegments(req.Date)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListDaySegmentsResponse{List: list})
}

func (s *HttpSrv) StatsOverview(c *gin.Context) {
	overview, err := v1.NewStatsLogic(c, s.Core).Overview()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, overview)
}
