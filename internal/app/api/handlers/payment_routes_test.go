package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRegisterPaymentRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/payment")
	RegisterPaymentRoutes(g, nil)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("POST /payment/create-payment-intent"))
	require.True(t, contains("POST /payment/confirm-payment"))
	require.True(t, contains("GET /payment/status/:donationId"))
	require.True(t, contains("GET /payment/donations"))
}
