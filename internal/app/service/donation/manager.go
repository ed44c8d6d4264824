package donation

import (
	"context"

	models "github.com/hopeworks/donations/internal/models"
	types "github.com/hopeworks/donations/pkg/types"
)

type CreateIntentRequest struct {
	Amount    float64 `json:"amount"`
	DonorName string  `json:"donorName"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
}

type CreateIntentResult struct {
	// ClientSecret is the opaque token the caller hands to the client-side
	// payment widget to complete the intent.
	ClientSecret string `json:"clientSecret"`
	DonationID   string `json:"donationId"`
}

type ConfirmPaymentResult struct {
	Success bool `json:"success"`
	// Status is the raw gateway status when the intent has not succeeded.
	Status string `json:"status,omitempty"`
	// Donor fields come from the gateway's intent record, the source of
	// truth, not from the local row.
	Amount    float64 `json:"amount,omitempty"`
	DonorName string  `json:"donorName,omitempty"`
	Email     string  `json:"email,omitempty"`
}

// DonationManager drives the donation payment lifecycle: intent creation,
// client confirmation, webhook reconciliation and read paths.
type DonationManager interface {
	// Create a payment intent with the gateway and persist a pending record.
	CreateIntent(ctx context.Context, req *CreateIntentRequest) (*CreateIntentResult, error)
	// Re-check the intent with the gateway and settle the record when it
	// succeeded. Safe to call repeatedly for the same intent.
	ConfirmPayment(ctx context.Context, externalPaymentID string) (*ConfirmPaymentResult, error)
	// Apply a gateway-reported terminal status (webhook delivery path).
	ApplyGatewayStatus(ctx context.Context, externalPaymentID string, status types.DonationStatus) error
	// Read the persisted record. Reflects last-known status, which may lag
	// the gateway until a confirmation runs.
	GetStatus(ctx context.Context, donationID string) (*models.Donation, error)
	// Enumerate all donations, newest first.
	ListDonations(ctx context.Context) ([]*models.Donation, error)
	// Scan donations with filters and paging (used by admin list pages).
	ScanDonations(ctx context.Context, req *ScanDonationsRequest) (*ScanDonationsResponse, error)
}

// Scan donation request/response.
type ScanDonationsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanDonationsResponse struct {
	Items []*models.Donation `json:"items"`
	Total int64              `json:"total"`
}
