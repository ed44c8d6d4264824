package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/hopeworks/donations/pkg/types"
)

func TestDonation_IsTerminal(t *testing.T) {
	var nilDonation *Donation
	require.False(t, nilDonation.IsTerminal())

	require.False(t, (&Donation{Status: types.DonationStatusPending}).IsTerminal())
	require.True(t, (&Donation{Status: types.DonationStatusSucceeded}).IsTerminal())
	require.True(t, (&Donation{Status: types.DonationStatusFailed}).IsTerminal())
	require.True(t, (&Donation{Status: types.DonationStatusCanceled}).IsTerminal())
}

func TestDonation_GetGatewayMetadata(t *testing.T) {
	d := &Donation{}
	require.Nil(t, d.GetGatewayMetadata())

	d.Extra = datatypes.NewJSONType(&DonationExtra{
		GatewayMetadata: map[string]string{"donorName": "Asha"},
	})
	require.Equal(t, "Asha", d.GetGatewayMetadata()["donorName"])
}

func TestDonationStatus_Valid(t *testing.T) {
	require.True(t, types.DonationStatusPending.Valid())
	require.True(t, types.DonationStatusCanceled.Valid())
	require.False(t, types.DonationStatus("refunded").Valid())
}
