package checkoutpaypal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter '%s'", e.Name)
}

func (e *MissingParameterError) GetHTTPErrorCode() int {
	return http.StatusBadRequest
}

func (e *MissingParameterError) ErrorTitle() string {
	return "Order ID is required"
}

// OrderCreationError means PayPal answered a create without an order id.
type OrderCreationError struct {
	StatusCode int
	DebugID    string
	Payload    json.RawMessage
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("paypal did not create order (status %d, debug-id %s)", e.StatusCode, e.DebugID)
}

func (e *OrderCreationError) GetHTTPErrorCode() int {
	return http.StatusInternalServerError
}

func (e *OrderCreationError) ErrorTitle() string {
	return "Failed to create PayPal order"
}

func (e *OrderCreationError) ErrorDetails() any {
	return e.Payload
}

// CaptureError means PayPal answered a capture without an id.
type CaptureError struct {
	OrderID    string
	StatusCode int
	DebugID    string
	Payload    json.RawMessage
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("paypal did not capture order %s (status %d, debug-id %s)", e.OrderID, e.StatusCode, e.DebugID)
}

func (e *CaptureError) GetHTTPErrorCode() int {
	return http.StatusInternalServerError
}

func (e *CaptureError) ErrorTitle() string {
	return "Failed to capture PayPal order"
}

func (e *CaptureError) ErrorDetails() any {
	return e.Payload
}

// RelayError covers every failure to reach PayPal or to make sense of its answer.
type RelayError struct {
	Operation string
	Err       error
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("error relaying %s to paypal: %s", e.Operation, e.Err)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

func (e *RelayError) GetHTTPErrorCode() int {
	return http.StatusInternalServerError
}

func (e *RelayError) ErrorDetails() any {
	return e.Error()
}

type InvalidRequestError struct {
	Err error
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("error parsing request: %s", e.Err)
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Err
}

func (e *InvalidRequestError) GetHTTPErrorCode() int {
	return http.StatusBadRequest
}

func (e *InvalidRequestError) ErrorTitle() string {
	return "Invalid request body"
}

func (e *InvalidRequestError) ErrorDetails() any {
	return e.Err.Error()
}
