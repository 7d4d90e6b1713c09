package model

import (
	"fmt"
	"net/url"
	"reception/shared"
	"reception/shared/currency"
	gDto "reception/shared/dto"
	"regexp"
)

const (
	EntityName = "payment_link"

	ActionCreatePaymentLink = "create_payment_link"
)

const (
	ChannelWhatsApp = "whatsapp"
	ChannelSMS      = "sms"
	ChannelCopy     = "copy"
)

var mobileAgent = regexp.MustCompile(`(?i)android|iphone|ipad|ipod|blackberry|iemobile|opera mini|mobile`)

type CreateRequest struct {
	BookingID     int     `json:"booking_id"`
	Amount        float64 `json:"amount"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	Description   string  `json:"description,omitempty"`
	CreatedBy     string  `json:"created_by,omitempty"`
}

type Link struct {
	LinkID      gDto.FlexString `json:"payment_link_id"`
	PaymentLink string          `json:"payment_link"`
	ShortURL    string          `json:"short_url"`
	Amount      currency.Amount `json:"amount"`
	ExpiresAt   string          `json:"expires_at"`
	Status      string          `json:"status"`
}

// URL prefers the short URL when the gateway returns one.
func (l Link) URL() string {
	if l.ShortURL != "" {
		return l.ShortURL
	}

	return l.PaymentLink
}

// Message is the text shared with the guest.
func Message(guest, hotel string, amount float64, link string) string {
	if hotel == "" {
		return fmt.Sprintf("Dear %s, please complete your payment of %s using this link: %s", guest, currency.Format(amount), link)
	}

	return fmt.Sprintf("Dear %s, please complete your payment of %s to %s using this link: %s", guest, currency.Format(amount), hotel, link)
}

func WhatsAppURL(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", shared.DigitsOnly(phone), url.QueryEscape(message))
}

func SMSURL(phone, message string) string {
	return fmt.Sprintf("sms:%s?body=%s", shared.DigitsOnly(phone), url.QueryEscape(message))
}

func IsMobile(userAgent string) bool {
	return mobileAgent.MatchString(userAgent)
}

type Share struct {
	Channel string `json:"channel"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message"`
	Copy    bool   `json:"copy"`
}

// ShareVia builds the deep link for a channel. SMS from a desktop browser falls back to copy.
func ShareVia(channel, phone, message, userAgent string) Share {
	switch channel {
	case ChannelWhatsApp:
		return Share{Channel: ChannelWhatsApp, URL: WhatsAppURL(phone, message), Message: message}
	case ChannelSMS:
		if IsMobile(userAgent) {
			return Share{Channel: ChannelSMS, URL: SMSURL(phone, message), Message: message}
		}
	}

	return Share{Channel: ChannelCopy, Message: message, Copy: true}
}
