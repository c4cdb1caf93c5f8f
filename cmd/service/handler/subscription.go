package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/pkg/billing"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/utils"
)

func (s *HttpSrv) GetSubscription(c *gin.Context) {
	detail, err := v1.NewSubscriptionLogic(c, s.Core).GetSubscription()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, detail)
}

type CreateCheckoutRequest struct {
	PlanID string `json:"plan_id" form:"plan_id" binding:"required"`
}

type CreateCheckoutResponse struct {
	URL string `json:"url"`
}

func (s *HttpSrv) CreateCheckout(c *gin.Context) {
	var (
		err error
		req CreateCheckoutRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	url, err := v1.NewSubscriptionLogic(c, s.Core).CreateCheckout(req.PlanID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, CreateCheckoutResponse{URL: url})
}

// BillingWebhook receives provider callbacks. The body must be read raw; the
// signature covers the exact payload bytes.
func (s *HttpSrv) BillingWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.APIError(c, errors.New("handler.BillingWebhook.ReadAll", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	sigHeader := c.GetHeader(billing.SignatureHeader)
	if err := v1.HandleWebhook(c, s.Core, payload, sigHeader); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
