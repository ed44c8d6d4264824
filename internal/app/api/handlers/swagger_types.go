package handlers

import (
	"github.com/hopeworks/donations/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespScanDonations wraps ScanDonationsResponse in the standard envelope.
type RespScanDonations struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    ScanDonationsResponse    `json:"data"`
}
