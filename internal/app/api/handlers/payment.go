package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hopeworks/donations/internal/app/service/donation"
)

// The public payment surface keeps the wire contract the donation widget
// already speaks: camelCase bodies, plain error objects, HTTP status codes.

type createPaymentIntentReq struct {
	Amount    float64 `json:"amount"`
	DonorName string  `json:"donorName"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
}

type createPaymentIntentResp struct {
	ClientSecret string `json:"clientSecret"`
	DonationID   string `json:"donationId"`
}

type confirmPaymentReq struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type confirmedDonation struct {
	Amount    float64 `json:"amount"`
	DonorName string  `json:"donorName"`
	Email     string  `json:"email"`
}

type confirmPaymentResp struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message"`
	Status   string             `json:"status,omitempty"`
	Donation *confirmedDonation `json:"donation,omitempty"`
}

type donationStatusResp struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	DonorName string    `json:"donorName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type errorResp struct {
	Error string `json:"error"`
}

// @Summary      Create payment intent
// @Description  Opens a payment intent with the processor and persists a pending donation.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body handlers.createPaymentIntentReq true "Donation details"
// @Success      200  {object}  handlers.createPaymentIntentResp
// @Failure      400  {object}  handlers.errorResp
// @Failure      500  {object}  handlers.errorResp
// @Router       /payment/create-payment-intent [post]
func ApiCreatePaymentIntent(mgr donation.DonationManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPaymentIntentReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid amount"})
			return
		}

		res, err := mgr.CreateIntent(c.Request.Context(), &donation.CreateIntentRequest{
			Amount:    req.Amount,
			DonorName: req.DonorName,
			Email:     req.Email,
			Message:   req.Message,
		})
		if err != nil {
			switch {
			case errors.Is(err, donation.ErrInvalidAmount):
				c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid amount"})
			case errors.Is(err, donation.ErrMissingDonorIdentity):
				c.JSON(http.StatusBadRequest, errorResp{Error: "Name and email are required"})
			default:
				c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to create payment intent"})
			}
			return
		}

		c.JSON(http.StatusOK, createPaymentIntentResp{
			ClientSecret: res.ClientSecret,
			DonationID:   res.DonationID,
		})
	}
}

// @Summary      Confirm payment
// @Description  Re-checks the intent with the processor and settles the donation when it succeeded.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body handlers.confirmPaymentReq true "Payment intent reference"
// @Success      200  {object}  handlers.confirmPaymentResp
// @Failure      404  {object}  handlers.errorResp
// @Failure      500  {object}  handlers.errorResp
// @Router       /payment/confirm-payment [post]
func ApiConfirmPayment(mgr donation.DonationManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req confirmPaymentReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid request"})
			return
		}

		res, err := mgr.ConfirmPayment(c.Request.Context(), req.PaymentIntentID)
		if err != nil {
			switch {
			case errors.Is(err, donation.ErrMissingIntentID):
				c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid request"})
			case errors.Is(err, donation.ErrDonationNotFound):
				c.JSON(http.StatusNotFound, errorResp{Error: "Donation not found"})
			default:
				c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to confirm payment"})
			}
			return
		}

		if !res.Success {
			c.JSON(http.StatusOK, confirmPaymentResp{
				Success: false,
				Message: "Payment not completed",
				Status:  res.Status,
			})
			return
		}
		c.JSON(http.StatusOK, confirmPaymentResp{
			Success: true,
			Message: "Payment successful",
			Donation: &confirmedDonation{
				Amount:    res.Amount,
				DonorName: res.DonorName,
				Email:     res.Email,
			},
		})
	}
}

// @Summary      Get donation status
// @Description  Returns the persisted record, which may lag the processor until a confirmation runs.
// @Tags         Payment
// @Produce      json
// @Param        donationId path string true "Donation id"
// @Success      200  {object}  handlers.donationStatusResp
// @Failure      404  {object}  handlers.errorResp
// @Router       /payment/status/{donationId} [get]
func ApiDonationStatus(mgr donation.DonationManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := mgr.GetStatus(c.Request.Context(), c.Param("donationId"))
		if err != nil {
			if errors.Is(err, donation.ErrDonationNotFound) {
				c.JSON(http.StatusNotFound, errorResp{Error: "Donation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to fetch donation status"})
			return
		}

		c.JSON(http.StatusOK, donationStatusResp{
			ID:        d.ID,
			Status:    string(d.Status),
			Amount:    d.Amount,
			DonorName: d.DonorName,
			Email:     d.Email,
			CreatedAt: d.CreatedAt,
		})
	}
}

// @Summary      List donations
// @Description  Returns every donation, newest first.
// @Tags         Payment
// @Produce      json
// @Success      200  {array}   models.Donation
// @Failure      500  {object}  handlers.errorResp
// @Router       /payment/donations [get]
func ApiListDonations(mgr donation.DonationManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := mgr.ListDonations(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to fetch donations"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func RegisterPaymentRoutes(r gin.IRouter, mgr donation.DonationManager) {
	r.POST("/create-payment-intent", ApiCreatePaymentIntent(mgr))
	r.POST("/confirm-payment", ApiConfirmPayment(mgr))
	r.GET("/status/:donationId", ApiDonationStatus(mgr))
	r.GET("/donations", ApiListDonations(mgr))
}
