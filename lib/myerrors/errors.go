package myerrors

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

// Optional views an error can offer to the http layer. Errors without them
// are rendered as a generic server error.
type titler interface {
	ErrorTitle() string
}

type messager interface {
	ErrorMessage() string
}

type detailer interface {
	ErrorDetails() any
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	log.Printf("Returning 400: %s", err.Error())
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...interface{}) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewUnsupportedMediaTypeError(err error) *httpError {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewBadGatewayError(err error) *httpError {
	return newError(http.StatusBadGateway, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}

// GetTitle returns the public one-line summary of err, or "Server error".
func GetTitle(err error) string {
	var t titler
	if err != nil && errors.As(err, &t) {
		return t.ErrorTitle()
	}
	return "Server error"
}

func GetMessage(err error) string {
	var m messager
	if err != nil && errors.As(err, &m) {
		return m.ErrorMessage()
	}
	return ""
}

// GetDetails returns the diagnostic payload that is safe to hand to a client.
// Errors that do not offer one expose their message.
func GetDetails(err error) any {
	if err == nil {
		return nil
	}
	var d detailer
	if errors.As(err, &d) {
		return d.ErrorDetails()
	}
	var t titler
	if errors.As(err, &t) {
		return nil
	}
	return err.Error()
}
