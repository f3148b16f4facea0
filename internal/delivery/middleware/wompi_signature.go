package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SignatureHeader carries the hex HMAC-SHA256 of the exact raw request body,
// keyed with the shared events secret.
const SignatureHeader = "x-wompi-signature-v1"

type WompiSignature struct {
	key []byte
	log *zap.Logger
}

func NewWompiSignature(eventsKey string, log *zap.Logger) *WompiSignature {
	return &WompiSignature{key: []byte(eventsKey), log: log}
}

// Verify rejects webhook requests whose body does not authenticate against
// the events key before they reach the reconciliation handler.
func (m *WompiSignature) Verify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 {
			m.log.Warn("webhook request without body")
			return fiber.NewError(fiber.StatusForbidden, "missing request body for signature verification")
		}

		received := c.Get(SignatureHeader)
		if received == "" {
			m.log.Warn("webhook request without signature header")
			return fiber.NewError(fiber.StatusForbidden, "missing wompi signature")
		}

		mac := hmac.New(sha256.New, m.key)
		mac.Write(body)
		want := mac.Sum(nil)

		got, err := hex.DecodeString(received)
		if err != nil || !hmac.Equal(want, got) {
			m.log.Warn("invalid wompi signature", zap.String("received", received))
			return fiber.NewError(fiber.StatusForbidden, "invalid wompi signature")
		}

		return c.Next()
	}
}
