package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/daygo-app/daygo/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
