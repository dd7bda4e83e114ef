package upi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScannedPayload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		payee, err := ParseScannedPayload("upi://pay?pa=shop%40okaxis&pn=Anand%20Stores&mc=5411&tr=abc")

		require.NoError(t, err)
		assert.Equal(t, Payee{VPA: "shop@okaxis", Name: "Anand Stores"}, payee)
	})

	t.Run("Without Name", func(t *testing.T) {
		payee, err := ParseScannedPayload("UPI://PAY?pa=shop@okaxis")

		require.NoError(t, err)
		assert.Equal(t, "shop@okaxis", payee.VPA)
		assert.Empty(t, payee.Name)
	})

	t.Run("Not UPI", func(t *testing.T) {
		_, err := ParseScannedPayload("https://example.com/pay?pa=shop@okaxis")
		assert.ErrorIs(t, err, ErrNotUPIPayload)
	})

	t.Run("Missing Payee", func(t *testing.T) {
		_, err := ParseScannedPayload("upi://pay?pn=Shop")
		assert.ErrorIs(t, err, ErrMissingPayee)
	})
}
