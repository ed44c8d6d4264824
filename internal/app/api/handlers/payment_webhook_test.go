package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hopeworks/donations/pkg/config"
)

func TestApiStripeWebhook_RejectsBadSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Stripe: config.StripeConfig{WebhookSecret: "whsec_test"}}
	r := gin.New()
	r.POST("/payment/webhook/stripe", ApiStripeWebhook(cfg, &stubDonationMgr{}, zap.NewNop().Sugar()))

	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	req := httptest.NewRequest(http.MethodPost, "/payment/webhook/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "signature verification failed")
}
