package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWeakPIN(t *testing.T) {
	weak := []string{"0000", "9999", "1234", "4321", "0123", "1010", "2580", "12345", "123456", "000000"}
	for _, pin := range weak {
		assert.True(t, IsWeakPIN(pin), "expected %q to be rejected", pin)
	}

	strong := []string{"4827", "1379", "80214", "739146"}
	for _, pin := range strong {
		assert.False(t, IsWeakPIN(pin), "expected %q to be accepted", pin)
	}
}

func TestSetupPINRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := SetupPINRequest{PIN: "4827"}
		assert.NoError(t, req.Validate())
	})

	t.Run("too short", func(t *testing.T) {
		req := SetupPINRequest{PIN: "123"}
		assert.Error(t, req.Validate())
	})

	t.Run("too long", func(t *testing.T) {
		req := SetupPINRequest{PIN: "123456789"}
		assert.Error(t, req.Validate())
	})

	t.Run("non-numeric", func(t *testing.T) {
		req := SetupPINRequest{PIN: "12a4"}
		assert.Error(t, req.Validate())
	})
}
