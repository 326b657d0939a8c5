package apiclient

import (
	"net/http"
	"time"
)

// Attempt describes one HTTP round trip made by the client.
type Attempt struct {
	Method     string
	URL        string
	Number     int
	StatusCode int
	Duration   time.Duration
	Err        error
}

// AttemptHook is called after each round trip.
type AttemptHook func(Attempt)

type requestOptions struct {
	timeout    time.Duration
	headers    map[string]string
	httpClient *http.Client

	maxRetries      int
	backoffStrategy BackoffStrategy

	signatureSecret string

	breaker *Breaker

	onAttempt AttemptHook
}

func defaultRequestOptions() *requestOptions {
	return &requestOptions{
		timeout:         10 * time.Second,
		headers:         make(map[string]string),
		backoffStrategy: DefaultBackoffStrategy(),
	}
}

// RequestOption configures a single call.
type RequestOption func(*requestOptions)

// WithTimeout bounds each attempt. Default is 10 seconds.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHeader adds a request header. Content-Type and Accept are set automatically.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithMaxRetries sets how many times a failed call is retried.
// Calls are not retried unless this is set.
func WithMaxRetries(n int) RequestOption {
	return func(o *requestOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

func WithBackoff(strategy BackoffStrategy) RequestOption {
	return func(o *requestOptions) {
		if strategy != nil {
			o.backoffStrategy = strategy
		}
	}
}

// WithBasicRetry retries attempts times with a fixed interval.
func WithBasicRetry(attempts int, interval time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.maxRetries = max(attempts, 0)
		o.backoffStrategy = FixedBackoff{Interval: interval}
	}
}

// WithNoRetry disables retries.
func WithNoRetry() RequestOption {
	return func(o *requestOptions) {
		o.maxRetries = 0
	}
}

// WithSignature signs the request with HMAC-SHA256.
// An empty secret leaves the request unsigned.
func WithSignature(secret string) RequestOption {
	return func(o *requestOptions) {
		o.signatureSecret = secret
	}
}

func WithHTTPClient(client *http.Client) RequestOption {
	return func(o *requestOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithBreaker guards the call with b. Reuse one breaker per remote API.
func WithBreaker(b *Breaker) RequestOption {
	return func(o *requestOptions) {
		o.breaker = b
	}
}

// WithOnAttempt registers a callback invoked after every round trip.
func WithOnAttempt(hook AttemptHook) RequestOption {
	return func(o *requestOptions) {
		o.onAttempt = hook
	}
}
