// Package wompi is the HTTP client for the Wompi payment provider. It owns
// the merchant acceptance token, signs every charge request with the
// integrity key and normalizes provider failures into *GatewayError.
package wompi

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"
)

type Config struct {
	APIURL       string
	PublicKey    string
	PrivateKey   string
	IntegrityKey string
	RedirectURL  string
}

type GatewayError struct {
	Message string
	// StatusCode is the provider HTTP status for structured API errors,
	// zero for transport or decoding failures.
	StatusCode int
}

func (e *GatewayError) Error() string { return e.Message }

type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger

	// Acceptance token: merchant-level consent token required before any
	// charge. Fetched lazily, cached, re-fetched once when absent.
	mu              sync.Mutex
	acceptanceToken string
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
}

var _ checkoutuc.PaymentGateway = (*Client)(nil)

func (c *Client) CreatePayment(ctx context.Context, in checkoutuc.CreatePaymentInput) (*checkoutuc.CreatePaymentOutput, error) {
	token, err := c.acceptance(ctx)
	if err != nil {
		return nil, err
	}

	payload := transactionRequest{
		AcceptanceToken: token,
		AmountInCents:   in.AmountInCents,
		Currency:        in.Currency,
		Signature:       c.signature(in.Reference, in.AmountInCents, in.Currency),
		CustomerEmail:   in.CustomerEmail,
		PaymentMethod:   in.PaymentMethod,
		Reference:       in.Reference,
		RedirectURL:     c.cfg.RedirectURL,
		CustomerData:    customerDataPayload(in.CustomerData),
		ShippingAddress: shippingAddressPayload(in.ShippingAddress),
	}

	c.log.Info("sending payment request", zap.String("reference", in.Reference))

	var out transactionResponse
	if err := c.postJSON(ctx, c.cfg.APIURL+"/transactions", payload, &out); err != nil {
		return nil, err
	}
	if out.Data.ID == "" || out.Data.Status == "" {
		return nil, &GatewayError{Message: "invalid response structure from wompi"}
	}

	c.log.Info("wompi transaction created",
		zap.String("wompi_transaction_id", out.Data.ID),
		zap.String("status", out.Data.Status))

	return &checkoutuc.CreatePaymentOutput{
		GatewayTransactionID: out.Data.ID,
		Status:               out.Data.Status,
		RedirectURL:          out.Data.RedirectURL,
	}, nil
}

func (c *Client) GetPaymentStatus(ctx context.Context, gatewayTransactionID string) (*checkoutuc.PaymentStatusOutput, error) {
	c.log.Info("fetching wompi transaction status", zap.String("wompi_transaction_id", gatewayTransactionID))

	var out transactionResponse
	if err := c.getJSON(ctx, c.cfg.APIURL+"/transactions/"+gatewayTransactionID, true, &out); err != nil {
		return nil, err
	}
	if out.Data.ID == "" || out.Data.Status == "" {
		return nil, &GatewayError{Message: "invalid response structure from wompi"}
	}

	return &checkoutuc.PaymentStatusOutput{
		GatewayTransactionID: out.Data.ID,
		Reference:            out.Data.Reference,
		Status:               out.Data.Status,
		AmountInCents:        out.Data.AmountInCents,
	}, nil
}

// signature is the request-integrity digest the provider recomputes:
// sha256(reference || amount_in_cents || currency || integrity_key), hex.
func (c *Client) signature(reference string, amountInCents int64, currency string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s%d%s%s", reference, amountInCents, currency, c.cfg.IntegrityKey))
	return hex.EncodeToString(sum[:])
}

func (c *Client) acceptance(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.acceptanceToken != "" {
		return c.acceptanceToken, nil
	}

	c.log.Info("loading wompi acceptance token")

	var out merchantResponse
	if err := c.getJSON(ctx, c.cfg.APIURL+"/merchants/"+c.cfg.PublicKey, false, &out); err != nil {
		return "", err
	}

	token := out.Data.PresignedAcceptance.AcceptanceToken
	if token == "" {
		return "", &GatewayError{Message: "acceptance token missing in wompi response"}
	}

	c.acceptanceToken = token
	return token, nil
}

func (c *Client) postJSON(ctx context.Context, url string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("encode request: %v", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.PrivateKey)
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, url string, authorized bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("build request: %v", err)}
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+c.cfg.PrivateKey)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("wompi request failed", zap.String("url", req.URL.Path), zap.Error(err))
		return &GatewayError{Message: fmt.Sprintf("wompi request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("read wompi response: %v", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := apiErrorMessage(raw)
		c.log.Error("wompi api error",
			zap.String("url", req.URL.Path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("reason", msg))
		return &GatewayError{
			Message:    fmt.Sprintf("wompi api error (%d): %s", resp.StatusCode, msg),
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &GatewayError{Message: fmt.Sprintf("decode wompi response: %v", err)}
	}
	return nil
}

func apiErrorMessage(raw []byte) string {
	var body apiErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Reason != "" {
		return body.Error.Reason
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return "no response body"
}
