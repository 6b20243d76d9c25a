package paypal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	IntentCapture         = "CAPTURE"
	CurrencyUSD           = "USD"
	ShippingNoShipping    = "NO_SHIPPING"
	StatusCompleted       = "COMPLETED"
	debugIDHeader         = "Paypal-Debug-Id"
	requestIDHeader       = "PayPal-Request-Id"
	grantClientCredential = "client_credentials"
)

type Credentials struct {
	ClientID string
	Secret   string
	APIBase  string
}

type AccessToken struct {
	Value     string
	TokenType string
	ExpiresIn int
}

type tokenResponse struct {
	Scope       string `json:"scope"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AppID       string `json:"app_id"`
	ExpiresIn   int    `json:"expires_in"`
	Nonce       string `json:"nonce"`
}

type CreateOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	ApplicationContext ApplicationContext `json:"application_context"`
}

type PurchaseUnit struct {
	Amount      Money  `json:"amount"`
	Description string `json:"description,omitempty"`
	InvoiceID   string `json:"invoice_id,omitempty"`
}

type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type ApplicationContext struct {
	ShippingPreference string `json:"shipping_preference"`
}

// Response is an upstream answer as received. Body is kept verbatim so it
// can be relayed to the caller byte for byte.
type Response struct {
	StatusCode int
	DebugID    string
	Body       json.RawMessage
}

// Order holds the few fields of an order or capture document the relay looks at.
type Order struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	PurchaseUnits []orderPurchaseUnit `json:"purchase_units"`
}

type orderPurchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	InvoiceID   string `json:"invoice_id"`
	Payments    struct {
		Captures []Capture `json:"captures"`
	} `json:"payments"`
}

type Capture struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Amount    Money  `json:"amount"`
	InvoiceID string `json:"invoice_id"`
	CustomID  string `json:"custom_id"`
}

func (r Response) Decode() (Order, error) {
	order := Order{}
	err := json.Unmarshal(r.Body, &order)
	if err != nil {
		return Order{}, fmt.Errorf("error decoding order response: %w", err)
	}
	return order, nil
}

// FirstCapture returns the first capture of the first purchase unit.
func (o Order) FirstCapture() (Capture, string, bool) {
	for _, pu := range o.PurchaseUnits {
		for _, capture := range pu.Payments.Captures {
			invoiceID := capture.InvoiceID
			if invoiceID == "" {
				invoiceID = pu.InvoiceID
			}
			return capture, invoiceID, true
		}
	}
	return Capture{}, "", false
}

// UpstreamAuthError means PayPal refused to hand out an access token.
type UpstreamAuthError struct {
	StatusCode int
	Body       json.RawMessage
	Reason     string
}

func (e *UpstreamAuthError) Error() string {
	return fmt.Sprintf("error getting paypal access token (status %d): %s", e.StatusCode, e.Reason)
}

func (e *UpstreamAuthError) GetHTTPErrorCode() int {
	return http.StatusInternalServerError
}

func (e *UpstreamAuthError) ErrorTitle() string {
	return "Failed to authenticate with PayPal"
}

func (e *UpstreamAuthError) ErrorDetails() any {
	if len(e.Body) > 0 && json.Valid(e.Body) {
		return e.Body
	}
	return e.Reason
}
