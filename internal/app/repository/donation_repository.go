package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hopeworks/donations/internal/app/service/donation"
	models "github.com/hopeworks/donations/internal/models"
	"github.com/hopeworks/donations/pkg/tool"
	types "github.com/hopeworks/donations/pkg/types"
)

// DonationRepository is the Postgres-backed donation store. Timestamps are
// set explicitly on every write rather than through model hooks.
type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) donation.Store {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Insert(ctx context.Context, d *models.Donation) (string, error) {
	if d.ID == "" {
		d.ID = tool.GenerateUUIDV7()
	}
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return "", fmt.Errorf("failed to insert donation: %w", err)
	}
	return d.ID, nil
}

func (r *DonationRepository) FindByID(ctx context.Context, id string) (*models.Donation, error) {
	var d models.Donation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donation.ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to find donation: %w", err)
	}
	return &d, nil
}

func (r *DonationRepository) FindByExternalPaymentID(ctx context.Context, externalPaymentID string) (*models.Donation, error) {
	var d models.Donation
	err := r.db.WithContext(ctx).Where("external_payment_id = ?", externalPaymentID).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donation.ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to find donation by payment id: %w", err)
	}
	return &d, nil
}

// UpdateStatus moves a pending donation to status in a single conditional
// UPDATE, so racing writers cannot pull a record out of a terminal state.
// Zero affected rows with an existing record is the idempotent no-op case.
func (r *DonationRepository) UpdateStatus(ctx context.Context, id string, status types.DonationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, types.DonationStatusPending).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update donation status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Donation{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check donation existence: %w", err)
		}
		if count == 0 {
			return donation.ErrDonationNotFound
		}
	}
	return nil
}

func (r *DonationRepository) ListAll(ctx context.Context) ([]*models.Donation, error) {
	var rows []*models.Donation
	err := r.db.WithContext(ctx).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}}}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return rows, nil
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

func (r *DonationRepository) Scan(ctx context.Context, req *donation.ScanDonationsRequest) ([]*models.Donation, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Donation{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	var rows []*models.Donation
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to scan donations: %w", err)
	}
	return rows, total, nil
}
