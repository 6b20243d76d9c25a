package warmup

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
	mode   string
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(mode string) *webService {
	return &webService{
		logger: mylog.New("warmup"),
		mode:   mode,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
	router.HandleFunc("/healthz", s.healthPage()).Methods("GET")
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}

func (s *webService) healthPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Relaying in " + s.mode + " mode",
		})
	}
}
