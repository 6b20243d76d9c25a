package myhttp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/MarcGrol/paypalrelay/lib/myerrors"
	"github.com/MarcGrol/paypalrelay/lib/mylog"
)

type ResponseWriter interface {
	WriteError(c context.Context, w http.ResponseWriter, traceLabel string, err error)
	Write(c context.Context, w http.ResponseWriter, httpStatus int, resp interface{})
	WriteRaw(c context.Context, w http.ResponseWriter, httpStatus int, body []byte)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string
}

func NewWriter(logger mylog.Logger) ResponseWriter {
	return &responseWriter{
		logger: logger,
	}
}

type responseWriter struct {
	logger mylog.Logger
}

func (rw responseWriter) WriteError(c context.Context, w http.ResponseWriter, traceLabel string, err error) {
	httpStatus := myerrors.GetHTTPStatus(err)
	severity := mylog.SeverityWarn
	if httpStatus >= http.StatusInternalServerError {
		severity = mylog.SeverityError
	}
	rw.logger.Log(c, traceLabel, severity, "Error response: http-status:%d, error-msg:%s", httpStatus, err)
	rw.write(w, httpStatus, ErrorResponse{
		Error:   myerrors.GetTitle(err),
		Message: myerrors.GetMessage(err),
		Details: myerrors.GetDetails(err),
	})
}

func (rw responseWriter) Write(c context.Context, w http.ResponseWriter, httpStatus int, resp interface{}) {
	rw.logger.Log(c, "", mylog.SeverityInfo, "Success response: http-status:%d", httpStatus)
	rw.write(w, httpStatus, resp)
}

// WriteRaw passes an already encoded json document through untouched.
func (rw responseWriter) WriteRaw(c context.Context, w http.ResponseWriter, httpStatus int, body []byte) {
	rw.logger.Log(c, "", mylog.SeverityInfo, "Success response: http-status:%d (%d bytes)", httpStatus, len(body))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, err := w.Write(body)
	if err != nil {
		log.Printf("Error writing raw response: %s", err)
	}
}

func (rw responseWriter) write(w http.ResponseWriter, httpStatus int, resp interface{}) {
	body, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		log.Printf("Error encoding response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, err = w.Write(append(body, '\n'))
	if err != nil {
		log.Printf("Error writing response: %s", err)
	}
}
