package types

// DonationStatus tracks a donation through the payment intent lifecycle.
// A record starts at pending and may move to exactly one terminal state.
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusSucceeded DonationStatus = "succeeded"
	DonationStatusFailed    DonationStatus = "failed"
	DonationStatusCanceled  DonationStatus = "canceled"
)

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationStatusPending, DonationStatusSucceeded, DonationStatusFailed, DonationStatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s DonationStatus) Terminal() bool {
	return s == DonationStatusSucceeded || s == DonationStatusFailed || s == DonationStatusCanceled
}
