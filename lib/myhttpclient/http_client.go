package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Upstream error pages can be large; we only need enough for diagnostics.
const maxResponseSize = 1 << 20

type jsonHTTPClient struct {
	client *http.Client
}

func newJSONHTTPClient(client *http.Client) HTTPSender {
	return &jsonHTTPClient{
		client: client,
	}
}

func (c jsonHTTPClient) Send(ctx context.Context, req Request) (Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return Response{}, fmt.Errorf("error creating http request for %s %s: %w", req.Method, req.URL, err)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("error sending %s %s: %w", req.Method, req.URL, err)
	}
	defer httpResp.Body.Close()

	log.Printf("HTTP call: %s %s -> %d", req.Method, req.URL, httpResp.StatusCode)

	respPayload, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return Response{}, fmt.Errorf("error reading response %s %s: %w", req.Method, req.URL, err)
	}

	return Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respPayload,
	}, nil
}
