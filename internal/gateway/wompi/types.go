package wompi

import checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"

// Wire shapes for the Wompi v1 API.

type transactionRequest struct {
	AcceptanceToken string                    `json:"acceptance_token"`
	AmountInCents   int64                     `json:"amount_in_cents"`
	Currency        string                    `json:"currency"`
	Signature       string                    `json:"signature"`
	CustomerEmail   string                    `json:"customer_email"`
	PaymentMethod   checkoutuc.PaymentMethod  `json:"payment_method"`
	Reference       string                    `json:"reference"`
	RedirectURL     string                    `json:"redirect_url"`
	CustomerData    customerDataPayload       `json:"customer_data"`
	ShippingAddress shippingAddressPayload    `json:"shipping_address"`
}

type customerDataPayload struct {
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
}

type shippingAddressPayload struct {
	AddressLine1 string `json:"address_line_1"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	City         string `json:"city"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
}

type transactionResponse struct {
	Data struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		Reference     string `json:"reference"`
		AmountInCents int64  `json:"amount_in_cents"`
		RedirectURL   string `json:"redirect_url"`
	} `json:"data"`
}

type merchantResponse struct {
	Data struct {
		PresignedAcceptance struct {
			AcceptanceToken string `json:"acceptance_token"`
		} `json:"presigned_acceptance"`
	} `json:"data"`
}

type apiErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}
