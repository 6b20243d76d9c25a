package checkoutpaypal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MarcGrol/paypalrelay/lib/myevents"
	"github.com/MarcGrol/paypalrelay/lib/mylog"
	"github.com/MarcGrol/paypalrelay/lib/mypublisher"
	"github.com/MarcGrol/paypalrelay/lib/mystore"
	"github.com/MarcGrol/paypalrelay/lib/mytime"
	"github.com/MarcGrol/paypalrelay/services/checkoutevents"
	"github.com/MarcGrol/paypalrelay/services/offerings"
	"github.com/MarcGrol/paypalrelay/services/paymentconfig"
	"github.com/MarcGrol/paypalrelay/services/paypal"
)

type service struct {
	logger      mylog.Logger
	credentials paypal.Credentials
	mode        paymentconfig.Mode
	table       offerings.Table
	client      paypal.Client
	nower       mytime.Nower
	auditStore  mystore.Store[CapturedPayment]
	publisher   mypublisher.Publisher
	topic       string
}

func newService(cfg paymentconfig.Config, table offerings.Table, client paypal.Client, nower mytime.Nower,
	auditStore mystore.Store[CapturedPayment], publisher mypublisher.Publisher, logger mylog.Logger) *service {
	creds := cfg.Credentials()
	topic := cfg.AuditTopic
	if topic == "" {
		topic = checkoutevents.TopicName
	}
	return &service{
		logger: logger,
		credentials: paypal.Credentials{
			ClientID: creds.ClientID,
			Secret:   creds.Secret,
			APIBase:  creds.APIBase,
		},
		mode:       cfg.Mode(),
		table:      table,
		client:     client,
		nower:      nower,
		auditStore: auditStore,
		publisher:  publisher,
		topic:      topic,
	}
}

// createOrder validates amount and asks paypal for an order. The upstream
// answer is returned unchanged.
func (s *service) createOrder(c context.Context, amount string) (json.RawMessage, error) {
	offering, err := s.table.Validate(amount)
	if err != nil {
		return nil, err
	}

	s.logger.Log(c, amount, mylog.SeverityInfo, "Create %s order for %s (%s)", s.mode, offering.Amount, offering.Description)

	token, err := s.client.GetAccessToken(c, s.credentials)
	if err != nil {
		return nil, classify("create-order", err)
	}

	invoiceID := fmt.Sprintf("INV-%d", s.nower.Now().UnixMilli())
	resp, err := s.client.CreateOrder(c, s.credentials.APIBase, token, paypal.CreateOrderRequest{
		Intent: paypal.IntentCapture,
		PurchaseUnits: []paypal.PurchaseUnit{
			{
				Amount: paypal.Money{
					CurrencyCode: paypal.CurrencyUSD,
					Value:        offering.Amount,
				},
				Description: offering.Description,
				InvoiceID:   invoiceID,
			},
		},
		ApplicationContext: paypal.ApplicationContext{
			ShippingPreference: paypal.ShippingNoShipping,
		},
	})
	if err != nil {
		return nil, classify("create-order", err)
	}

	order, err := resp.Decode()
	if err != nil {
		return nil, &RelayError{Operation: "create-order", Err: err}
	}
	if order.ID == "" {
		return nil, &OrderCreationError{
			StatusCode: resp.StatusCode,
			DebugID:    resp.DebugID,
			Payload:    resp.Body,
		}
	}

	s.logger.Log(c, order.ID, mylog.SeverityInfo, "Created order %s with status %s (invoice %s, debug-id %s)", order.ID, order.Status, invoiceID, resp.DebugID)

	s.publish(c, order.ID, checkoutevents.OrderCreated{
		OrderID:   order.ID,
		Amount:    offering.Amount,
		Currency:  paypal.CurrencyUSD,
		InvoiceID: invoiceID,
		Mode:      s.mode.String(),
	})

	return resp.Body, nil
}

// captureOrder captures an approved order. The upstream answer is returned
// unchanged whenever it carries an id, regardless of the capture status.
func (s *service) captureOrder(c context.Context, orderID string) (json.RawMessage, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, &MissingParameterError{Name: "orderId"}
	}

	s.logger.Log(c, orderID, mylog.SeverityInfo, "Capture %s order %s", s.mode, orderID)

	token, err := s.client.GetAccessToken(c, s.credentials)
	if err != nil {
		return nil, classify("capture-order", err)
	}

	resp, err := s.client.CaptureOrder(c, s.credentials.APIBase, token, orderID)
	if err != nil {
		return nil, classify("capture-order", err)
	}

	order, err := resp.Decode()
	if err != nil {
		return nil, &RelayError{Operation: "capture-order", Err: err}
	}
	if order.ID == "" {
		return nil, &CaptureError{
			OrderID:    orderID,
			StatusCode: resp.StatusCode,
			DebugID:    resp.DebugID,
			Payload:    resp.Body,
		}
	}

	s.logger.Log(c, orderID, mylog.SeverityInfo, "Captured order %s with status %s (debug-id %s)", order.ID, order.Status, resp.DebugID)

	if order.Status == paypal.StatusCompleted {
		s.audit(c, order, resp.DebugID)
	}

	return resp.Body, nil
}

func (s *service) audit(c context.Context, order paypal.Order, debugID string) {
	capture, invoiceID, _ := order.FirstCapture()
	payment := CapturedPayment{
		OrderID:    order.ID,
		CaptureID:  capture.ID,
		Status:     order.Status,
		Amount:     capture.Amount.Value,
		Currency:   capture.Amount.CurrencyCode,
		InvoiceID:  invoiceID,
		DebugID:    debugID,
		Mode:       s.mode.String(),
		CapturedAt: s.nower.Now(),
	}

	err := s.auditStore.Put(c, payment.OrderID, payment)
	if err != nil {
		s.logger.Log(c, order.ID, mylog.SeverityError, "Error storing audit record for order %s: %s", order.ID, err)
	}

	s.publish(c, order.ID, checkoutevents.OrderCaptured{
		OrderID:   payment.OrderID,
		CaptureID: payment.CaptureID,
		Status:    payment.Status,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		InvoiceID: payment.InvoiceID,
		Mode:      payment.Mode,
	})
}

// publish never fails the operation; the payment already happened upstream.
func (s *service) publish(c context.Context, orderID string, event myevents.Event) {
	err := s.publisher.Publish(c, s.topic, event)
	if err != nil {
		s.logger.Log(c, orderID, mylog.SeverityError, "Error publishing %s for order %s: %s", event.GetEventTypeName(), orderID, err)
	}
}

// classify keeps the errors the http layer knows how to render and turns
// everything else into a RelayError.
func classify(operation string, err error) error {
	authErr := &paypal.UpstreamAuthError{}
	if errors.As(err, &authErr) {
		return authErr
	}
	return &RelayError{Operation: operation, Err: err}
}
