package stripe_gateway

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"

	"github.com/hopeworks/donations/internal/app/service/donation"
	"github.com/hopeworks/donations/pkg/config"
)

// Gateway adapts Stripe's PaymentIntents API to the donation.Gateway port.
// No retries: transient processor failures surface to the caller.
type Gateway struct {
	api *client.API
	log *zap.SugaredLogger
}

func New(cfg *config.Config, log *zap.SugaredLogger) (*Gateway, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key is empty")
	}
	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)
	return &Gateway{api: api, log: log}, nil
}

func (g *Gateway) CreateIntent(ctx context.Context, p *donation.CreateIntentParams) (*donation.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountMinor),
		Currency: stripe.String(p.Currency),
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.log.Errorw("stripe_create_intent_failed", "err", err)
		return nil, err
	}
	return toPaymentIntent(pi), nil
}

func (g *Gateway) RetrieveIntent(ctx context.Context, id string) (*donation.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		g.log.Errorw("stripe_retrieve_intent_failed", "err", err, "intent_id", id)
		return nil, err
	}
	return toPaymentIntent(pi), nil
}

func toPaymentIntent(pi *stripe.PaymentIntent) *donation.PaymentIntent {
	return &donation.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountMinor:  pi.Amount,
		Metadata:     pi.Metadata,
	}
}
