package paymentconfig

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/paypalrelay/lib/mycontext"
	"github.com/MarcGrol/paypalrelay/lib/myhttp"
	"github.com/MarcGrol/paypalrelay/lib/mylog"
)

type webService struct {
	logger mylog.Logger
	public PublicConfig
}

func NewWebService(cfg Config) *webService {
	return &webService{
		logger: mylog.New("paymentconfig"),
		public: cfg.Public(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/config", s.configPage()).Methods("GET")
}

func (s *webService) configPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, s.public)
	}
}
