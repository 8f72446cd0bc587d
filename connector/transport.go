package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzip"

	"github.com/forgo/rango/api"
)

// Request is the transport-level shape of a prepared method: an operation
// (mapped to the wire verb by the transport), the fully-built target URL,
// headers, and an optional body.
type Request struct {
	Operation api.Operation
	URL       string
	Header    http.Header
	Body      []byte
}

// Response is the transport-level answer: the status and the raw body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport dispatches one prepared request and returns the raw response
// or a transport failure. Implementations must honor the context deadline.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport is the default Transport, riding on net/http. It asks for
// gzip-compressed responses and inflates them before handing the body to
// the engine.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport builds a transport around http.DefaultTransport.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{client: &http.Client{}}
}

// NewHTTPTransportWithClient builds a transport around a caller-supplied
// client, e.g. to configure TLS or connection pooling.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, verbFor(req.Operation), req.URL, body)
	if err != nil {
		return nil, err
	}
	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept-Encoding", "gzip")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	reader := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip response: %w", err)
		}
		defer gz.Close()
		reader = gz
	}
	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Body: payload}, nil
}

func verbFor(op api.Operation) string {
	switch op {
	case api.OperationCreate:
		return http.MethodPost
	case api.OperationRead:
		return http.MethodGet
	case api.OperationModify:
		return http.MethodPatch
	case api.OperationReplace:
		return http.MethodPut
	case api.OperationDelete:
		return http.MethodDelete
	case api.OperationReadHeader:
		return http.MethodHead
	}
	return http.MethodGet
}
