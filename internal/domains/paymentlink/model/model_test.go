package model_test

import (
	"reception/internal/domains/paymentlink/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	iphone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"
	android = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36"
	desktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36"
)

func TestMessage(t *testing.T) {
	assert.Equal(t,
		"Dear Asha, please complete your payment of ₹4,000.00 to Grand Stay using this link: https://rzp.io/l/x",
		model.Message("Asha", "Grand Stay", 4000, "https://rzp.io/l/x"))
	assert.Equal(t,
		"Dear Asha, please complete your payment of ₹10.50 using this link: https://rzp.io/l/x",
		model.Message("Asha", "", 10.5, "https://rzp.io/l/x"))
}

func TestIsMobile(t *testing.T) {
	assert.True(t, model.IsMobile(iphone))
	assert.True(t, model.IsMobile(android))
	assert.False(t, model.IsMobile(desktop))
	assert.False(t, model.IsMobile(""))
}

func TestShareVia(t *testing.T) {
	msg := "Pay now: https://rzp.io/l/x"

	whatsapp := model.ShareVia(model.ChannelWhatsApp, "+91 98765-43210", msg, desktop)
	assert.Equal(t, "https://wa.me/919876543210?text=Pay+now%3A+https%3A%2F%2Frzp.io%2Fl%2Fx", whatsapp.URL)
	assert.False(t, whatsapp.Copy)

	sms := model.ShareVia(model.ChannelSMS, "98765 43210", msg, iphone)
	assert.Equal(t, "sms:9876543210?body=Pay+now%3A+https%3A%2F%2Frzp.io%2Fl%2Fx", sms.URL)

	copied := model.ShareVia(model.ChannelSMS, "9876543210", msg, desktop)
	assert.Equal(t, model.Share{Channel: model.ChannelCopy, Message: msg, Copy: true}, copied)

	assert.True(t, model.ShareVia("carrier-pigeon", "9876543210", msg, iphone).Copy)
}

func TestLink_URL(t *testing.T) {
	assert.Equal(t, "https://rzp.io/l/x", model.Link{ShortURL: "https://rzp.io/l/x", PaymentLink: "https://long"}.URL())
	assert.Equal(t, "https://long", model.Link{PaymentLink: "https://long"}.URL())
}
