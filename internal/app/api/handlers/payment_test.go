package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/donations/internal/app/service/donation"
	models "github.com/hopeworks/donations/internal/models"
	types "github.com/hopeworks/donations/pkg/types"
)

// stubDonationMgr scripts DonationManager responses per test.
type stubDonationMgr struct {
	createRes  *donation.CreateIntentResult
	createErr  error
	confirmRes *donation.ConfirmPaymentResult
	confirmErr error
	statusRes  *models.Donation
	statusErr  error
	listRes    []*models.Donation
	listErr    error
}

func (s *stubDonationMgr) CreateIntent(_ context.Context, _ *donation.CreateIntentRequest) (*donation.CreateIntentResult, error) {
	return s.createRes, s.createErr
}

func (s *stubDonationMgr) ConfirmPayment(_ context.Context, _ string) (*donation.ConfirmPaymentResult, error) {
	return s.confirmRes, s.confirmErr
}

func (s *stubDonationMgr) ApplyGatewayStatus(_ context.Context, _ string, _ types.DonationStatus) error {
	panic("not used")
}

func (s *stubDonationMgr) GetStatus(_ context.Context, _ string) (*models.Donation, error) {
	return s.statusRes, s.statusErr
}

func (s *stubDonationMgr) ListDonations(_ context.Context) ([]*models.Donation, error) {
	return s.listRes, s.listErr
}

func (s *stubDonationMgr) ScanDonations(_ context.Context, _ *donation.ScanDonationsRequest) (*donation.ScanDonationsResponse, error) {
	panic("not used")
}

func newPaymentRouter(mgr donation.DonationManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterPaymentRoutes(r.Group("/payment"), mgr)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApiCreatePaymentIntent_ReturnsSecretAndID(t *testing.T) {
	mgr := &stubDonationMgr{createRes: &donation.CreateIntentResult{ClientSecret: "sec_1", DonationID: "don_1"}}
	r := newPaymentRouter(mgr)

	w := postJSON(t, r, "/payment/create-payment-intent", map[string]any{
		"amount": 500, "donorName": "Asha", "email": "a@x.com", "message": "for meals",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "sec_1", resp["clientSecret"])
	require.Equal(t, "don_1", resp["donationId"])
}

func TestApiCreatePaymentIntent_MapsValidationErrors(t *testing.T) {
	cases := []struct {
		err     error
		wantMsg string
	}{
		{donation.ErrInvalidAmount, "Invalid amount"},
		{donation.ErrMissingDonorIdentity, "Name and email are required"},
	}
	for _, tc := range cases {
		r := newPaymentRouter(&stubDonationMgr{createErr: tc.err})
		w := postJSON(t, r, "/payment/create-payment-intent", map[string]any{"amount": 0})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), tc.wantMsg)
	}
}

func TestApiCreatePaymentIntent_GatewayErrorIsGeneric500(t *testing.T) {
	r := newPaymentRouter(&stubDonationMgr{createErr: donation.ErrGateway})
	w := postJSON(t, r, "/payment/create-payment-intent", map[string]any{"amount": 500, "donorName": "A", "email": "a@x.com"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to create payment intent")
	// processor internals stay internal
	require.NotContains(t, w.Body.String(), "gateway")
}

func TestApiConfirmPayment_Success(t *testing.T) {
	mgr := &stubDonationMgr{confirmRes: &donation.ConfirmPaymentResult{
		Success: true, Status: "succeeded", Amount: 500, DonorName: "Asha", Email: "a@x.com",
	}}
	r := newPaymentRouter(mgr)

	w := postJSON(t, r, "/payment/confirm-payment", map[string]any{"paymentIntentId": "pi_1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp confirmPaymentResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Payment successful", resp.Message)
	require.NotNil(t, resp.Donation)
	require.Equal(t, 500.0, resp.Donation.Amount)
	require.Equal(t, "Asha", resp.Donation.DonorName)
	require.Equal(t, "a@x.com", resp.Donation.Email)
}

func TestApiConfirmPayment_NotCompleted(t *testing.T) {
	mgr := &stubDonationMgr{confirmRes: &donation.ConfirmPaymentResult{Success: false, Status: "requires_action"}}
	r := newPaymentRouter(mgr)

	w := postJSON(t, r, "/payment/confirm-payment", map[string]any{"paymentIntentId": "pi_1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp confirmPaymentResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Payment not completed", resp.Message)
	require.Equal(t, "requires_action", resp.Status)
	require.Nil(t, resp.Donation)
}

func TestApiConfirmPayment_NotFoundAndGatewayErrors(t *testing.T) {
	r := newPaymentRouter(&stubDonationMgr{confirmErr: donation.ErrDonationNotFound})
	w := postJSON(t, r, "/payment/confirm-payment", map[string]any{"paymentIntentId": "pi_x"})
	require.Equal(t, http.StatusNotFound, w.Code)

	r = newPaymentRouter(&stubDonationMgr{confirmErr: donation.ErrGateway})
	w = postJSON(t, r, "/payment/confirm-payment", map[string]any{"paymentIntentId": "pi_x"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to confirm payment")
}

func TestApiDonationStatus_ReturnsSnapshot(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mgr := &stubDonationMgr{statusRes: &models.Donation{
		ID: "don_1", Status: types.DonationStatusPending, Amount: 500,
		DonorName: "Asha", Email: "a@x.com", CreatedAt: created,
	}}
	r := newPaymentRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/payment/status/don_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp donationStatusResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "don_1", resp.ID)
	require.Equal(t, "pending", resp.Status)
	require.Equal(t, 500.0, resp.Amount)
	require.True(t, created.Equal(resp.CreatedAt))
}

func TestApiDonationStatus_UnknownIDIs404(t *testing.T) {
	r := newPaymentRouter(&stubDonationMgr{statusErr: donation.ErrDonationNotFound})
	req := httptest.NewRequest(http.MethodGet, "/payment/status/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Donation not found")
}

func TestApiListDonations_PassesThroughOrder(t *testing.T) {
	mgr := &stubDonationMgr{listRes: []*models.Donation{
		{ID: "don_3", DonorName: "third"},
		{ID: "don_2", DonorName: "second"},
		{ID: "don_1", DonorName: "first"},
	}}
	r := newPaymentRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/payment/donations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 3)
	require.Equal(t, "don_3", rows[0]["id"])
	require.Equal(t, "don_1", rows[2]["id"])
}
