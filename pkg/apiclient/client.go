package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

const (
	userAgent        = "drdl-portal/1.0"
	maxResponseBytes = 1 << 20
	maxErrorBodyLen  = 200
)

// Client sends JSON requests to a remote API with optional retries,
// request signing and circuit breaking.
// Zero value is not usable; use New to create instances.
type Client struct {
	client   *http.Client
	validate *playground.Validate
}

// Result summarizes a completed call.
type Result struct {
	StatusCode int
	Attempts   int
	Duration   time.Duration
}

// New creates a client with a pooled default HTTP client.
func New() *Client {
	return NewWithHTTPClient(&http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	})
}

// NewWithHTTPClient creates a client on top of a custom HTTP client.
func NewWithHTTPClient(client *http.Client) *Client {
	if client == nil {
		return New()
	}
	return &Client{
		client:   client,
		validate: playground.New(),
	}
}

// PostJSON validates body against its `validate` struct tags, marshals it to JSON
// and POSTs it to rawURL. Any 2xx status is success.
//
// Example:
//
//	res, err := client.PostJSON(ctx, apiURL+"/api/employees", payload,
//		apiclient.WithSignature(secret),
//		apiclient.WithBreaker(breaker),
//	)
func (c *Client) PostJSON(ctx context.Context, rawURL string, body any, opts ...RequestOption) (Result, error) {
	if err := c.validatePayload(body); err != nil {
		return Result{}, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return c.do(ctx, http.MethodPost, rawURL, payload, nil, opts)
}

// GetJSON fetches rawURL and decodes a 2xx JSON body into out.
// An empty body leaves out untouched.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any, opts ...RequestOption) (Result, error) {
	if out == nil {
		return Result{}, fmt.Errorf("%w: decode target is required", ErrInvalidConfiguration)
	}
	return c.do(ctx, http.MethodGet, rawURL, nil, out, opts)
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte, out any, opts []RequestOption) (Result, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return Result{}, err
	}

	options := defaultRequestOptions()
	for _, opt := range opts {
		opt(options)
	}

	client := c.client
	if options.httpClient != nil {
		client = options.httpClient
	}

	if options.breaker != nil && !options.breaker.Allow() {
		return Result{}, ErrCircuitOpen
	}

	start := time.Now()
	var result Result
	var lastErr error
	for attempt := 0; attempt <= options.maxRetries; attempt++ {
		if attempt > 0 {
			delay := options.backoffStrategy.NextInterval(attempt)
			select {
			case <-ctx.Done():
				result.Duration = time.Since(start)
				return result, ctx.Err()
			case <-time.After(delay):
			}
		}

		attemptStart := time.Now()
		status, body, err := c.roundTrip(ctx, client, method, u, payload, options)
		result.Attempts = attempt + 1
		result.StatusCode = status

		if options.onAttempt != nil {
			options.onAttempt(Attempt{
				Method:     method,
				URL:        u.String(),
				Number:     attempt + 1,
				StatusCode: status,
				Duration:   time.Since(attemptStart),
				Err:        err,
			})
		}

		if options.breaker != nil {
			if err == nil {
				options.breaker.RecordSuccess()
			} else {
				options.breaker.RecordFailure()
			}
		}

		if err == nil {
			result.Duration = time.Since(start)
			if out != nil && len(bytes.TrimSpace(body)) > 0 {
				if err := json.Unmarshal(body, out); err != nil {
					return result, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
				}
			}
			return result, nil
		}

		lastErr = err

		if isPermanentError(status) {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("%w: %w", ErrPermanentFailure, err)
		}
	}

	result.Duration = time.Since(start)
	return result, fmt.Errorf("%w after %d attempts: %w", ErrRequestFailed, options.maxRetries+1, lastErr)
}

func (c *Client) roundTrip(ctx context.Context, client *http.Client, method string, u *url.URL, payload []byte, options *requestOptions) (int, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, u.String(), reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	if options.signatureSecret != "" {
		content := payload
		if len(content) == 0 {
			content = []byte(u.RequestURI())
		}
		sig, err := SignPayload(options.signatureSecret, content)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to sign request: %w", err)
		}
		sig.Apply(req.Header)
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return 0, nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return 0, nil, fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: reading body: %w", ErrTemporaryFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, body, &StatusError{Code: resp.StatusCode, Body: sanitizeBody(body)}
	}

	return resp.StatusCode, body, nil
}

func (c *Client) validatePayload(body any) error {
	if body == nil {
		return fmt.Errorf("%w: body is required", ErrInvalidPayload)
	}

	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("%w: body is required", ErrInvalidPayload)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	if err := c.validate.Struct(v.Interface()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

func parseURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	return u, nil
}

// Error bodies end up in logs; keep them on one line and short.
func sanitizeBody(body []byte) string {
	s := strings.TrimSpace(strings.ReplaceAll(string(body), "\n", " "))
	if len(s) > maxErrorBodyLen {
		s = s[:maxErrorBodyLen] + "..."
	}
	return s
}

// 4xx means the request itself is wrong, except for the few codes that
// signal a transient condition on the server side.
func isPermanentError(statusCode int) bool {
	if statusCode < 400 || statusCode >= 500 {
		return false
	}
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	default:
		return true
	}
}
