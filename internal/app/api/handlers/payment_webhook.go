package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	"github.com/hopeworks/donations/internal/app/service/donation"
	"github.com/hopeworks/donations/pkg/config"
	"github.com/hopeworks/donations/pkg/logctx"
	"github.com/hopeworks/donations/pkg/response"
	types "github.com/hopeworks/donations/pkg/types"
)

// eventStatus maps processor event types onto the donation state machine.
var eventStatus = map[stripe.EventType]types.DonationStatus{
	stripe.EventTypePaymentIntentSucceeded:     types.DonationStatusSucceeded,
	stripe.EventTypePaymentIntentPaymentFailed: types.DonationStatusFailed,
	stripe.EventTypePaymentIntentCanceled:      types.DonationStatusCanceled,
}

// @Summary      Stripe Webhook
// @Description  Handles signature-verified payment intent events and reconciles donation status.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /payment/webhook/stripe [post]
func ApiStripeWebhook(cfg *config.Config, mgr donation.DonationManager, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, "failed to read body"))
			return
		}

		event, err := webhook.ConstructEventWithOptions(
			body,
			c.GetHeader("Stripe-Signature"),
			cfg.Stripe.WebhookSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
		)
		if err != nil {
			logctx.FromGin(c, log).Warnw("webhook_signature_invalid", "err", err)
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, "signature verification failed"))
			return
		}

		status, ok := eventStatus[event.Type]
		if !ok {
			logctx.FromGin(c, log).Infow("webhook_event_skipped", "type", event.Type)
			c.JSON(http.StatusOK, response.OKT[any](nil))
			return
		}

		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			logctx.FromGin(c, log).Errorw("webhook_event_unparseable", "err", err, "type", event.Type)
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, "unparseable event payload"))
			return
		}

		if err := mgr.ApplyGatewayStatus(c.Request.Context(), pi.ID, status); err != nil {
			if errors.Is(err, donation.ErrDonationNotFound) {
				// Acknowledge so the processor does not keep retrying an
				// intent this deployment never created.
				logctx.FromGin(c, log).Warnw("webhook_unknown_intent", "intent_id", pi.ID)
				c.JSON(http.StatusOK, response.OKT[any](nil))
				return
			}
			logctx.FromGin(c, log).Errorw("webhook_apply_failed", "err", err, "intent_id", pi.ID)
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, "failed to apply event"))
			return
		}

		logctx.FromGin(c, log).Infow("webhook_event_applied", "intent_id", pi.ID, "status", status)
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterPaymentWebhookRoutes(r gin.IRouter, cfg *config.Config, mgr donation.DonationManager, log *zap.SugaredLogger) {
	r.POST("/stripe", ApiStripeWebhook(cfg, mgr, log))
}
