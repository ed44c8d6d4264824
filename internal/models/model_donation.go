package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/hopeworks/donations/pkg/types"
)

// DonationExtra holds the metadata snapshot attached to the gateway's
// payment intent at creation time, kept for out-of-band reconciliation.
type DonationExtra struct {
	GatewayMetadata map[string]string `json:"gateway_metadata,omitempty"`
}

// Donation is the sole persisted entity: one row per payment intent opened
// with the gateway. ExternalPaymentID is set once at creation and uniquely
// identifies the row.
type Donation struct {
	ID        string  `gorm:"column:id;primary_key;type:uuid" json:"id"`
	DonorName string  `gorm:"column:donor_name;type:varchar(256);not null" json:"donorName"`
	Email     string  `gorm:"column:email;type:varchar(256);not null;index:idx_donation_email" json:"email"`
	// Amount is in major currency units (rupees); the gateway boundary alone
	// uses minor units.
	Amount            float64              `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Currency          string               `gorm:"column:currency;type:varchar(8);not null;default:'inr'" json:"currency"`
	ExternalPaymentID string               `gorm:"column:external_payment_id;type:varchar(128);not null;uniqueIndex:unique_external_payment_id" json:"externalPaymentId"`
	Status            types.DonationStatus `gorm:"column:status;type:varchar(16);not null;default:'pending'" json:"status"`
	Message           string               `gorm:"column:message;type:text" json:"message,omitempty"`

	Extra datatypes.JSONType[*DonationExtra] `gorm:"column:extra;type:jsonb;default:'{}'" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;index:idx_donation_created_at,sort:desc" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Donation) TableName() string {
	return "donation"
}

// IsTerminal reports whether the donation reached a final status.
func (d *Donation) IsTerminal() bool {
	if d == nil {
		return false
	}
	return d.Status.Terminal()
}

// GetGatewayMetadata returns the metadata snapshot sent to the gateway, or
// nil when none was recorded.
func (d *Donation) GetGatewayMetadata() map[string]string {
	if d == nil || d.Extra.Data() == nil {
		return nil
	}
	return d.Extra.Data().GatewayMetadata
}
