package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	contentTypeKey  = "Content-Type"
	authorizeKey    = "Authorization"
	jsonContentType = "application/json"
)

// Request a single remote call
type Request struct {
	Method string
	Url    string
	Header http.Header
	Body   []byte
}

func NewRequest(method, url string, body []byte) *Request {
	req := &Request{
		Method: method,
		Url:    url,
		Header: make(http.Header),
		Body:   body,
	}
	if body != nil {
		req.Header.Set(contentTypeKey, jsonContentType)
	}
	return req
}

// SetBearer set Authorization: Bearer <token>
func (r *Request) SetBearer(token string) {
	r.Header.Set(authorizeKey, fmt.Sprintf("Bearer %s", token))
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport generic http execution primitive. A non 2xx status is not an
// error at this level, callers classify the response.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// HttpTransport shared, stateless per request
type HttpTransport struct {
	client  *http.Client
	limiter *rate.Limiter
	metrics *Metrics
}

// NewHttpTransport requestsPerSecond <= 0 disable rate limit, metrics can be nil
func NewHttpTransport(timeout time.Duration, requestsPerSecond float64, metrics *Metrics) *HttpTransport {
	t := &HttpTransport{
		client:  &http.Client{Timeout: timeout},
		metrics: metrics,
	}
	if requestsPerSecond > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return t
}

func (t *HttpTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	var body io.Reader = http.NoBody
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Url, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		httpReq.Header[k] = v
	}

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		t.metrics.observe(req.Method, "error", time.Since(start))
		return nil, fmt.Errorf("error making HTTP request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	t.metrics.observe(req.Method, strconv.Itoa(resp.StatusCode), time.Since(start))
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}
