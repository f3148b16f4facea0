package checkout

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending    Status = "PENDING"    // created, awaiting payment submission
	StatusProcessing Status = "PROCESSING" // payment in flight at the gateway
	StatusApproved   Status = "APPROVED"
	StatusDeclined   Status = "DECLINED"
	StatusError      Status = "ERROR"
)

var ErrEmptyItems = errors.New("transaction requires at least one item")

type TransactionItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"` // minor units, captured at checkout time
}

type Transaction struct {
	ID                   string            `json:"id"`
	CustomerID           string            `json:"customerId"`
	DeliveryID           string            `json:"deliveryId"`
	Items                []TransactionItem `json:"items"`
	TotalAmount          int64             `json:"totalAmount"`
	ShippingCost         int64             `json:"shippingCost"`
	BaseFee              int64             `json:"baseFee"`
	Status               Status            `json:"status"`
	GatewayTransactionID string            `json:"gatewayTransactionId,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// NewTransaction computes the total once; it is never recomputed afterwards.
func NewTransaction(id, customerID, deliveryID string, items []TransactionItem, shippingCost, baseFee int64) (*Transaction, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	var subtotal int64
	for _, it := range items {
		subtotal += int64(it.Quantity) * it.UnitPrice
	}

	now := time.Now()
	return &Transaction{
		ID:           id,
		CustomerID:   customerID,
		DeliveryID:   deliveryID,
		Items:        items,
		TotalAmount:  subtotal + shippingCost + baseFee,
		ShippingCost: shippingCost,
		BaseFee:      baseFee,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Final reports whether the transaction reached a terminal status.
func (t *Transaction) Final() bool {
	switch t.Status {
	case StatusApproved, StatusDeclined, StatusError:
		return true
	default:
		return false
	}
}

// Approve transitions to APPROVED from PENDING or PROCESSING.
// Returns false (no state change) from any terminal status.
func (t *Transaction) Approve(gatewayID string) bool {
	return t.finalize(StatusApproved, gatewayID)
}

// Decline transitions to DECLINED from PENDING or PROCESSING.
func (t *Transaction) Decline(gatewayID string) bool {
	return t.finalize(StatusDeclined, gatewayID)
}

// MarkError transitions to ERROR from PENDING or PROCESSING.
func (t *Transaction) MarkError(gatewayID string) bool {
	return t.finalize(StatusError, gatewayID)
}

// MarkProcessing transitions to PROCESSING, allowed from PENDING only.
func (t *Transaction) MarkProcessing(gatewayID string) bool {
	if t.Status != StatusPending {
		return false
	}
	t.Status = StatusProcessing
	t.setGatewayID(gatewayID)
	t.UpdatedAt = time.Now()
	return true
}

// ApplyGatewayStatus maps a gateway-reported status onto the guarded
// transitions. A gateway PENDING means the charge is still in flight and
// maps to PROCESSING; VOIDED maps to DECLINED with no further effect.
func (t *Transaction) ApplyGatewayStatus(s Status, gatewayID string) bool {
	switch s {
	case StatusApproved:
		return t.Approve(gatewayID)
	case StatusDeclined:
		return t.Decline(gatewayID)
	case StatusError:
		return t.MarkError(gatewayID)
	case StatusProcessing:
		return t.MarkProcessing(gatewayID)
	default:
		return false
	}
}

// MapGatewayStatus translates the provider status vocabulary into the
// internal one. The second return is false for statuses we ignore.
func MapGatewayStatus(raw string) (Status, bool) {
	switch raw {
	case "APPROVED":
		return StatusApproved, true
	case "DECLINED":
		return StatusDeclined, true
	case "ERROR":
		return StatusError, true
	case "VOIDED":
		return StatusDeclined, true
	case "PENDING":
		return StatusProcessing, true
	default:
		return "", false
	}
}

func (t *Transaction) finalize(to Status, gatewayID string) bool {
	if t.Status != StatusPending && t.Status != StatusProcessing {
		return false
	}
	t.Status = to
	t.setGatewayID(gatewayID)
	t.UpdatedAt = time.Now()
	return true
}

func (t *Transaction) setGatewayID(gatewayID string) {
	if gatewayID != "" {
		t.GatewayTransactionID = gatewayID
	}
}
