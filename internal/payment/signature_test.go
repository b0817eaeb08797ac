package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nitinco/nexsphere/internal/payment"
)

func webhookSign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSign(t *testing.T) {
	// Known vector: HMAC-SHA256("s", "order_1|pay_1").
	got := payment.Sign("s", "order_1", "pay_1")
	assert.Equal(t, "742a38a9b459999e738a2d54e89b9f64b144535a09efaf21054dc143460d16c7", got)
}

func TestVerifyClientSignature(t *testing.T) {
	secret := "test_secret"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"
	valid := payment.Sign(secret, orderID, paymentID)

	t.Run("valid signature accepted", func(t *testing.T) {
		assert.True(t, payment.VerifyClientSignature(secret, orderID, paymentID, valid))
	})

	t.Run("single character flip rejected", func(t *testing.T) {
		mutated := []byte(valid)
		if mutated[0] == 'a' {
			mutated[0] = 'b'
		} else {
			mutated[0] = 'a'
		}
		assert.False(t, payment.VerifyClientSignature(secret, orderID, paymentID, string(mutated)))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := payment.Sign("other_secret", orderID, paymentID)
		assert.False(t, payment.VerifyClientSignature(secret, orderID, paymentID, other))
	})

	t.Run("swapped order and payment ids rejected", func(t *testing.T) {
		swapped := payment.Sign(secret, paymentID, orderID)
		assert.False(t, payment.VerifyClientSignature(secret, orderID, paymentID, swapped))
	})

	t.Run("empty signature rejected", func(t *testing.T) {
		assert.False(t, payment.VerifyClientSignature(secret, orderID, paymentID, ""))
	})
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"event":"payment.captured","payload":{}}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		valid := webhookSign(secret, body)
		assert.True(t, payment.VerifyWebhookSignature(secret, body, valid))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		valid := webhookSign(secret, body)
		tampered := append([]byte{}, body...)
		tampered[0] = '['
		assert.False(t, payment.VerifyWebhookSignature(secret, tampered, valid))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		assert.False(t, payment.VerifyWebhookSignature(secret, body, webhookSign("whsec_other", body)))
	})
}
