package myhttpclient

import (
	"context"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
)

type Request struct {
	Method      string
	URL         string
	ContentType string
	Headers     map[string]string
	Body        []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type HTTPSender interface {
	Send(c context.Context, req Request) (Response, error)
}

// New returns a sender whose calls never take longer than timeout.
func New(timeout time.Duration) HTTPSender {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return newJSONHTTPClient(&http.Client{Timeout: timeout})
}
