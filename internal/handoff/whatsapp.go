package handoff

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

const whatsAppBaseURL = "https://wa.me/"

// WhatsApp composes click-to-chat deep links addressed to the shop's number.
type WhatsApp struct {
	phone  string
	logger *zap.Logger
}

func NewWhatsApp(phone string, logger *zap.Logger) (*WhatsApp, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return nil, fmt.Errorf("phone %q has no digits", phone)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &WhatsApp{phone: digits, logger: logger}, nil
}

// Link encodes spaces as %20; some WhatsApp clients show a query "+" literally.
// A literal "+" in message is already escaped as %2B.
func (w *WhatsApp) Link(message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return whatsAppBaseURL + w.phone + "?text=" + text
}

// HandOff returns the deep link for message. Nothing is sent; opening the link is up to the caller.
func (w *WhatsApp) HandOff(_ context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message is empty")
	}

	link := w.Link(message)
	w.logger.Info("whatsapp link composed", zap.String("phone", w.phone), zap.Int("message_bytes", len(message)))

	return link, nil
}
