package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hopeworks/donations/internal/app/api/middleware"
	"github.com/hopeworks/donations/internal/app/service/donation"
	models "github.com/hopeworks/donations/internal/models"
	"github.com/hopeworks/donations/pkg/config"
	"github.com/hopeworks/donations/pkg/response"
	types "github.com/hopeworks/donations/pkg/types"
)

type ScanDonationsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type DonationItem struct {
	ID                string               `json:"id"`
	DonorName         string               `json:"donor_name"`
	Email             string               `json:"email"`
	Amount            float64              `json:"amount"`
	Currency          string               `json:"currency"`
	ExternalPaymentID string               `json:"external_payment_id"`
	Status            types.DonationStatus `json:"status"`
	Message           string               `json:"message,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type ScanDonationsResponse struct {
	Items []*DonationItem `json:"items"`
	Total int64           `json:"total"`
}

func toDonationItem(m *models.Donation) *DonationItem {
	return &DonationItem{
		ID:                m.ID,
		DonorName:         m.DonorName,
		Email:             m.Email,
		Amount:            m.Amount,
		Currency:          m.Currency,
		ExternalPaymentID: m.ExternalPaymentID,
		Status:            m.Status,
		Message:           m.Message,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// @Summary      Scan donations
// @Description  Lists donations with filters and paging for the admin dashboard.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.ScanDonationsRequest true "Scan request"
// @Success      200  {object}  handlers.RespScanDonations
// @Router       /api/v1/admin/donations/scan [post]
func ApiAdminScanDonations(mgr donation.DonationManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScanDonationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		res, err := mgr.ScanDonations(c.Request.Context(), &donation.ScanDonationsRequest{
			Filters:   req.Filters,
			From:      req.From,
			Size:      req.Size,
			SortBy:    req.SortBy,
			SortOrder: req.SortOrder,
		})
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		c.JSON(http.StatusOK, response.OKT(ScanDonationsResponse{
			Items: lo.Map(res.Items, func(m *models.Donation, _ int) *DonationItem { return toDonationItem(m) }),
			Total: res.Total,
		}))
	}
}

func RegisterAdminRoutes(r gin.IRouter, cfg *config.Config, mgr donation.DonationManager) {
	r.Use(middleware.AdminAuthMiddleware(cfg.Admin.JWTSecret))
	r.POST("/donations/scan", ApiAdminScanDonations(mgr))
}
