package donation

import "errors"

var (
	// Validation failures, detected before any external call.
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrMissingDonorIdentity = errors.New("name and email are required")
	ErrMissingIntentID      = errors.New("payment intent id is required")

	// ErrDonationNotFound marks lookups that matched no record.
	ErrDonationNotFound = errors.New("donation not found")

	// ErrGateway wraps payment processor failures. Internal detail is
	// logged, not surfaced.
	ErrGateway = errors.New("payment gateway failure")

	// ErrStore wraps persistence failures.
	ErrStore = errors.New("donation store failure")
)
