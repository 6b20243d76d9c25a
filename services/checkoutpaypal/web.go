package checkoutpaypal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/paypalrelay/lib/mycontext"
	"github.com/MarcGrol/paypalrelay/lib/myhttp"
	"github.com/MarcGrol/paypalrelay/lib/mylog"
	"github.com/MarcGrol/paypalrelay/lib/mypublisher"
	"github.com/MarcGrol/paypalrelay/lib/mystore"
	"github.com/MarcGrol/paypalrelay/lib/mytime"
	"github.com/MarcGrol/paypalrelay/services/offerings"
	"github.com/MarcGrol/paypalrelay/services/paymentconfig"
	"github.com/MarcGrol/paypalrelay/services/paypal"
)

const maxRequestSize = 64 << 10

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(cfg paymentconfig.Config, table offerings.Table, client paypal.Client, nower mytime.Nower,
	auditStore mystore.Store[CapturedPayment], publisher mypublisher.Publisher) *webService {
	logger := mylog.New("checkoutpaypal")
	return &webService{
		logger:  logger,
		service: newService(cfg, table, client, nower, auditStore, publisher, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/create-order", s.createOrderPage()).Methods("POST")
	router.HandleFunc("/capture-order", s.captureOrderPage()).Methods("POST")
}

func (s *webService) createOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		req := createOrderRequest{}
		err := parseRequest(r, &req)
		if err != nil {
			writer.WriteError(c, w, "", err)
			return
		}

		body, err := s.service.createOrder(c, string(req.Amount))
		if err != nil {
			writer.WriteError(c, w, string(req.Amount), err)
			return
		}

		writer.WriteRaw(c, w, http.StatusOK, body)
	}
}

func (s *webService) captureOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		req := captureOrderRequest{}
		err := parseRequest(r, &req)
		if err != nil {
			writer.WriteError(c, w, "", err)
			return
		}

		body, err := s.service.captureOrder(c, string(req.OrderID))
		if err != nil {
			writer.WriteError(c, w, string(req.OrderID), err)
			return
		}

		writer.WriteRaw(c, w, http.StatusOK, body)
	}
}

// parseRequest fills dest from a json or form-encoded body. An empty body
// leaves dest untouched.
func parseRequest(r *http.Request, dest any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		err := r.ParseForm()
		if err != nil {
			return &InvalidRequestError{Err: err}
		}
		err = formcodec.NewDecoder().Decode(dest, r.PostForm)
		if err != nil {
			return &InvalidRequestError{Err: err}
		}
		return nil
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestSize)).Decode(dest)
	if err != nil && !errors.Is(err, io.EOF) {
		return &InvalidRequestError{Err: err}
	}
	return nil
}
