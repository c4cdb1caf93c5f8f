package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daygo-app/daygo/app/core"
	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/cmd/service/handler"
	"github.com/daygo-app/daygo/cmd/service/middleware"
	"github.com/daygo-app/daygo/pkg/metrics"
	"github.com/daygo-app/daygo/pkg/types"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func apiMetrics(appCore *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := appCore.Metrics().ApiResponseTimer(c.FullPath())
		c.Next()
		timer.ObserveDuration()

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			appCore.Metrics().ApiErrorInc(c.Request.Method, c.FullPath(), status)
		}
	}
}

func GetIPLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, opts...)
	}
}

func GetUserLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + token.User
		}, opts...)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(apiMetrics(s.Core))
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.SetAppid(s.Core))
	s.Engine.Use(middleware.AcceptLanguage())

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/register", ipLimit("register", core.WithLimit(10)), s.Register)
		apiV1.POST("/login", ipLimit("login", core.WithLimit(20)), s.Login)

		// the payment provider authenticates via payload signature
		apiV1.POST("/billing/webhook", s.BillingWebhook)

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		user := authed.Group("/user")
		{
			user.GET("/info", s.GetUser)
			user.PUT("/profile", userLimit("profile"), s.UpdateUserProfile)
			user.POST("/secret/token", s.CreateAccessToken)
			user.GET("/secret/tokens", s.GetUserAccessTokens)
			user.DELETE("/secret/token", s.DeleteAccessToken)
		}

		entry := authed.Group("/entry")
		{
			entry.POST("", userLimit("modify_entry"), s.CreateEntry)
			entry.GET("/list", s.ListEntries)
			entry.GET("/search", s.SearchEntries)
			entry.GET("/:id", s.GetEntry)
			entry.PUT("/:id", userLimit("modify_entry"), s.UpdateEntry)
			entry.DELETE("/:id", s.DeleteEntry)
		}

		template := authed.Group("/template")
		{
			template.POST("", userLimit("modify_template"), s.CreateTemplate)
			template.GET("/list", s.ListMyTemplates)
			template.GET("/community", s.ListCommunityTemplates)
			template.GET("/:id", s.GetTemplate)
			template.PUT("/:id", userLimit("modify_template"), s.UpdateTemplate)
			template.DELETE("/:id", s.DeleteTemplate)
			template.POST("/:id/share", s.ShareTemplate)
			template.DELETE("/:id/share", s.UnshareTemplate)
			template.POST("/:id/like", userLimit("like_template"), s.LikeTemplate)
			template.PUT("/:id/feature", middleware.VerifyUserRole(s.Core, types.USER_ROLE_ADMIN), s.FeatureTemplate)
		}

		goal := authed.Group("/goal")
		{
			goal.POST("", s.CreateGoal)
			goal.GET("/list", s.ListGoals)
			goal.GET("/progress", s.GoalProgress)
			goal.PUT("/:id", s.UpdateGoal)
			goal.DELETE("/:id", s.DeleteGoal)
		}

		countdown := authed.Group("/countdown")
		{
			countdown.POST("", s.CreateCountdownEvent)
			countdown.GET("/list", s.ListCountdownEvents)
			countdown.PUT("/:id", s.UpdateCountdownEvent)
			countdown.DELETE("/:id", s.DeleteCountdownEvent)
		}

		day := authed.Group("/day")
		{
			day.POST("/score", s.ScoreDay)
			day.GET("/scores", s.GetDayScores)
			day.POST("/segment", s.CreateDaySegment)
			day.GET("/segments", s.ListDaySegments)
			day.PUT("/segment/:id", s.UpdateDaySegment)
			day.DELETE("/segment/:id", s.DeleteDaySegment)
		}

		authed.GET("/stats/overview", s.StatsOverview)

		chat := authed.Group("/chat")
		{
			chat.POST("/session", s.CreateChatSession)
			chat.GET("/sessions", s.ListChatSessions)
			chat.DELETE("/session/:session", s.DeleteChatSession)
			chat.GET("/session/:session/messages", s.ListChatMessages)
			chat.POST("/session/:session/message", userLimit("chat", core.WithLimit(20)), s.SendChatMessage)
		}

		media := authed.Group("/media")
		{
			media.POST("/transcribe", middleware.PaymentRequired, userLimit("transcribe", core.WithLimit(10)), s.Transcribe)
			media.POST("/ocr", middleware.PaymentRequired, userLimit("ocr", core.WithLimit(10)), s.ExtractImageText)
			media.POST("/upload-key", s.GenUploadKey)
		}

		subscription := authed.Group("/subscription")
		{
			subscription.GET("", s.GetSubscription)
			subscription.POST("/checkout", userLimit("checkout", core.WithLimit(10)), s.CreateCheckout)
		}
	}
}
