package donation

import (
	"context"

	models "github.com/hopeworks/donations/internal/models"
	types "github.com/hopeworks/donations/pkg/types"
)

// Store is the donation persistence port. Implementations must make an
// Insert visible to a FindByExternalPaymentID that happens after it, and
// each write sets updated_at itself.
type Store interface {
	// Insert assigns the id and timestamps and returns the new id.
	Insert(ctx context.Context, d *models.Donation) (string, error)
	// FindByID returns ErrDonationNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*models.Donation, error)
	// FindByExternalPaymentID returns ErrDonationNotFound when no record
	// matches.
	FindByExternalPaymentID(ctx context.Context, externalPaymentID string) (*models.Donation, error)
	// UpdateStatus transitions a pending record to status. Records already
	// in a terminal state are left untouched.
	UpdateStatus(ctx context.Context, id string, status types.DonationStatus) error
	// ListAll returns every donation ordered by created_at descending.
	ListAll(ctx context.Context) ([]*models.Donation, error)
	// Scan lists donations with filters and paging.
	Scan(ctx context.Context, req *ScanDonationsRequest) ([]*models.Donation, int64, error)
}
