package donation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	models "github.com/hopeworks/donations/internal/models"
	"github.com/hopeworks/donations/pkg/config"
	"github.com/hopeworks/donations/pkg/logctx"
	"github.com/hopeworks/donations/pkg/tool"
	types "github.com/hopeworks/donations/pkg/types"
)

// intentStatusSucceeded is the gateway's settled-intent status string.
const intentStatusSucceeded = "succeeded"

type Service struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	gateway Gateway
	store   Store
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, gateway Gateway, store Store) DonationManager {
	return &Service{cfg: cfg, log: log, gateway: gateway, store: store}
}

// CreateIntent validates input, opens a payment intent with the gateway and
// persists a pending donation referencing it. The record is written only
// after the gateway confirms intent creation, so a failed gateway call never
// leaves an orphan row.
func (s *Service) CreateIntent(ctx context.Context, req *CreateIntentRequest) (*CreateIntentResult, error) {
	if req == nil {
		return nil, ErrInvalidAmount
	}
	amount := req.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	name := strings.TrimSpace(req.DonorName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, ErrMissingDonorIdentity
	}
	message := strings.TrimSpace(req.Message)

	// Donor metadata rides on the gateway's own record for out-of-band
	// reconciliation.
	metadata := map[string]string{
		"donorName": name,
		"email":     email,
		"message":   message,
	}
	intent, err := s.gateway.CreateIntent(ctx, &CreateIntentParams{
		AmountMinor: tool.MinorUnits(amount),
		Currency:    s.currency(),
		Metadata:    metadata,
	})
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("create_intent_gateway_error", "err", err)
		return nil, fmt.Errorf("%w: create intent: %v", ErrGateway, err)
	}

	d := &models.Donation{
		DonorName:         name,
		Email:             email,
		Amount:            amount,
		Currency:          s.currency(),
		ExternalPaymentID: intent.ID,
		Status:            types.DonationStatusPending,
		Message:           message,
		Extra:             datatypes.NewJSONType(&models.DonationExtra{GatewayMetadata: metadata}),
	}
	id, err := s.store.Insert(ctx, d)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("create_intent_store_error", "err", err, "intent_id", intent.ID)
		return nil, fmt.Errorf("%w: insert donation: %v", ErrStore, err)
	}

	logctx.FromCtx(ctx, s.log).Infow("donation_intent_created",
		"donation_id", id,
		"intent_id", intent.ID,
		"amount", amount,
	)
	return &CreateIntentResult{ClientSecret: intent.ClientSecret, DonationID: id}, nil
}

// ConfirmPayment re-reads the intent from the gateway (never trusting
// client-supplied status) and settles the matching record when the gateway
// reports success. Repeated calls for an already-settled intent are no-op
// writes.
func (s *Service) ConfirmPayment(ctx context.Context, externalPaymentID string) (*ConfirmPaymentResult, error) {
	externalPaymentID = strings.TrimSpace(externalPaymentID)
	if externalPaymentID == "" {
		return nil, ErrMissingIntentID
	}

	intent, err := s.gateway.RetrieveIntent(ctx, externalPaymentID)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("confirm_payment_gateway_error", "err", err, "intent_id", externalPaymentID)
		return nil, fmt.Errorf("%w: retrieve intent: %v", ErrGateway, err)
	}

	if intent.Status != intentStatusSucceeded {
		return &ConfirmPaymentResult{Success: false, Status: intent.Status}, nil
	}

	d, err := s.store.FindByExternalPaymentID(ctx, externalPaymentID)
	if err != nil {
		return nil, err
	}
	if d.Status != types.DonationStatusSucceeded {
		if err := s.store.UpdateStatus(ctx, d.ID, types.DonationStatusSucceeded); err != nil {
			logctx.FromCtx(ctx, s.log).Errorw("confirm_payment_store_error", "err", err, "donation_id", d.ID)
			return nil, fmt.Errorf("%w: update status: %v", ErrStore, err)
		}
		logctx.FromCtx(ctx, s.log).Infow("donation_settled", "donation_id", d.ID, "intent_id", externalPaymentID)
	}

	return &ConfirmPaymentResult{
		Success:   true,
		Status:    intent.Status,
		Amount:    tool.MajorUnits(intent.AmountMinor),
		DonorName: intent.Metadata["donorName"],
		Email:     intent.Metadata["email"],
	}, nil
}

// ApplyGatewayStatus records a gateway-reported terminal status, the webhook
// reconciliation path. Records already in a terminal state are never moved.
func (s *Service) ApplyGatewayStatus(ctx context.Context, externalPaymentID string, status types.DonationStatus) error {
	if !status.Terminal() {
		return fmt.Errorf("non-terminal status %q", status)
	}
	d, err := s.store.FindByExternalPaymentID(ctx, externalPaymentID)
	if err != nil {
		return err
	}
	if d.IsTerminal() {
		logctx.FromCtx(ctx, s.log).Infow("gateway_status_noop",
			"donation_id", d.ID, "current", d.Status, "reported", status)
		return nil
	}
	if err := s.store.UpdateStatus(ctx, d.ID, status); err != nil {
		return fmt.Errorf("%w: update status: %v", ErrStore, err)
	}
	logctx.FromCtx(ctx, s.log).Infow("gateway_status_applied", "donation_id", d.ID, "status", status)
	return nil
}

func (s *Service) GetStatus(ctx context.Context, donationID string) (*models.Donation, error) {
	return s.store.FindByID(ctx, donationID)
}

func (s *Service) ListDonations(ctx context.Context) ([]*models.Donation, error) {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list donations: %v", ErrStore, err)
	}
	return rows, nil
}

func (s *Service) ScanDonations(ctx context.Context, req *ScanDonationsRequest) (*ScanDonationsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}
	items, total, err := s.store.Scan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: scan donations: %v", ErrStore, err)
	}
	return &ScanDonationsResponse{Items: items, Total: total}, nil
}

func (s *Service) currency() string {
	if c := s.cfg.Stripe.Currency; c != "" {
		return c
	}
	return "inr"
}
