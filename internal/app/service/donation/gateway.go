package donation

import "context"

// PaymentIntent is the gateway's view of a collection attempt.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountMinor  int64
	Metadata     map[string]string
}

type CreateIntentParams struct {
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// Gateway is the payment processor port. Both operations are network calls
// and may fail transiently; failures are surfaced immediately, retries are a
// caller concern.
type Gateway interface {
	CreateIntent(ctx context.Context, params *CreateIntentParams) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
}
