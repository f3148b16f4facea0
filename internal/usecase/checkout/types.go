package checkout

import (
	"context"
	"fmt"
)

// Stable error codes surfaced to clients alongside a human-readable message.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeProductNotFound     = "PRODUCT_NOT_FOUND"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
	CodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeDataNotFound        = "DATA_NOT_FOUND"
	CodeGatewayError        = "GATEWAY_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

type Customer struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

type Delivery struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Store ports. FindByID returns (nil, nil) when the record does not exist.

type TransactionStore interface {
	Create(ctx context.Context, trx *Transaction) error
	FindByID(ctx context.Context, id string) (*Transaction, error)

	// UpdateStatus conditionally moves the stored transaction to status and
	// records the gateway reference. The update applies only when the stored
	// status still allows the transition (PROCESSING requires PENDING;
	// terminal targets require PENDING or PROCESSING). A lost race or an
	// already-final row returns (false, nil), never an error.
	UpdateStatus(ctx context.Context, id string, status Status, gatewayID string) (bool, error)
}

type CustomerStore interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)
}

type DeliveryStore interface {
	Create(ctx context.Context, d *Delivery) error
	FindByID(ctx context.Context, id string) (*Delivery, error)
}

// Payment gateway port, mirroring the provider contract.

type PaymentMethod struct {
	Type         string `json:"type"` // CARD | NEQUI | PSE
	Token        string `json:"token,omitempty"`
	Installments int    `json:"installments,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

type CustomerData struct {
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
}

type ShippingAddress struct {
	AddressLine1 string `json:"address_line_1"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	City         string `json:"city"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
}

type CreatePaymentInput struct {
	AmountInCents   int64
	Currency        string
	CustomerEmail   string
	PaymentMethod   PaymentMethod
	Reference       string
	CustomerData    CustomerData
	ShippingAddress ShippingAddress
}

type CreatePaymentOutput struct {
	GatewayTransactionID string
	Status               string
	RedirectURL          string
}

type PaymentStatusOutput struct {
	GatewayTransactionID string
	Reference            string
	Status               string
	AmountInCents        int64
}

type PaymentGateway interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (*CreatePaymentOutput, error)
	GetPaymentStatus(ctx context.Context, gatewayTransactionID string) (*PaymentStatusOutput, error)
}
