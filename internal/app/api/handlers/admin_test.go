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
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/donations/internal/app/service/donation"
	models "github.com/hopeworks/donations/internal/models"
	"github.com/hopeworks/donations/pkg/config"
	types "github.com/hopeworks/donations/pkg/types"
)

type stubScanMgr struct {
	stubDonationMgr
	scanRes *donation.ScanDonationsResponse
}

func (s *stubScanMgr) ScanDonations(_ context.Context, _ *donation.ScanDonationsRequest) (*donation.ScanDonationsResponse, error) {
	return s.scanRes, nil
}

func adminToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestApiAdminScanDonations_RequiresAuthAndReturnsItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Admin: config.AdminConfig{JWTSecret: "admin-secret"}}
	mgr := &stubScanMgr{scanRes: &donation.ScanDonationsResponse{
		Items: []*models.Donation{{ID: "don_1", DonorName: "Asha", Status: types.DonationStatusSucceeded, Amount: 500}},
		Total: 1,
	}}

	r := gin.New()
	RegisterAdminRoutes(r.Group("/api/v1/admin"), cfg, mgr)

	body, _ := json.Marshal(map[string]any{"from": 0, "size": 10})

	// no token
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/donations/scan", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/donations/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "admin-secret"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total":1`)
	require.Contains(t, w.Body.String(), "don_1")
}
