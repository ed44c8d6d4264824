package stripe_gateway

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"github.com/hopeworks/donations/pkg/config"
)

func TestNew_RequiresSecretKey(t *testing.T) {
	_, err := New(&config.Config{}, zap.NewNop().Sugar())
	require.Error(t, err)
}

func TestToPaymentIntent_MapsGatewayFields(t *testing.T) {
	pi := &stripe.PaymentIntent{
		ID:           "pi_1",
		ClientSecret: "sec_1",
		Status:       stripe.PaymentIntentStatusSucceeded,
		Amount:       50000,
		Metadata:     map[string]string{"donorName": "Asha"},
	}
	got := toPaymentIntent(pi)
	require.Equal(t, "pi_1", got.ID)
	require.Equal(t, "sec_1", got.ClientSecret)
	require.Equal(t, "succeeded", got.Status)
	require.Equal(t, int64(50000), got.AmountMinor)
	require.Equal(t, "Asha", got.Metadata["donorName"])
}
