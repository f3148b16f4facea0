package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signatureApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	sig := NewWompiSignature("events_test_key", zap.NewNop())
	app.Post("/webhooks/wompi", sig.Verify(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"received": true})
	})
	return app
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte("events_test_key"))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify_ValidSignaturePasses(t *testing.T) {
	app := signatureApp(t)
	body := `{"event":"transaction.updated"}`

	req := httptest.NewRequest(http.MethodPost, "/webhooks/wompi", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, sign(body))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestVerify_MissingHeaderRejected(t *testing.T) {
	app := signatureApp(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/wompi", strings.NewReader(`{"event":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestVerify_TamperedBodyRejected(t *testing.T) {
	app := signatureApp(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/wompi", strings.NewReader(`{"event":"tampered"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, sign(`{"event":"original"}`))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestVerify_MalformedSignatureRejected(t *testing.T) {
	app := signatureApp(t)
	body := `{"event":"x"}`

	req := httptest.NewRequest(http.MethodPost, "/webhooks/wompi", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, "not-hex")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestVerify_EmptyBodyRejected(t *testing.T) {
	app := signatureApp(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/wompi", nil)
	req.Header.Set(SignatureHeader, sign(""))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
