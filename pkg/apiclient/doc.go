// Package apiclient sends JSON requests to the employee API.
//
// It handles the mechanics of a call and nothing else: URL checks, request
// validation of struct payloads (go-playground/validator tags), per-attempt
// timeouts, retries with backoff, optional HMAC-SHA256 signing and a circuit
// breaker shared across calls to the same API.
//
// # Usage
//
//	client := apiclient.New()
//	breaker := apiclient.NewBreaker(5, 1, 30*time.Second)
//
//	_, err := client.PostJSON(ctx, base+"/api/employees", payload,
//		apiclient.WithBreaker(breaker),
//		apiclient.WithSignature(secret),
//	)
//
//	var found []employee.Employee
//	_, err = client.GetJSON(ctx, base+"/api/employees/search?name=john", &found,
//		apiclient.WithMaxRetries(2),
//	)
//
// # Failures
//
// A non-2xx answer yields a *StatusError, which matches ErrUnexpectedStatus.
// 4xx answers other than 408, 425 and 429 are not retried and are wrapped in
// ErrPermanentFailure. Exhausted retries are wrapped in ErrRequestFailed.
// Transport errors are ErrTimeout or ErrTemporaryFailure. When the breaker is
// open the call fails immediately with ErrCircuitOpen.
//
// # Signing
//
// WithSignature adds X-Portal-Signature, X-Portal-Timestamp and
// X-Portal-Request-ID. The signature is HMAC-SHA256(secret, timestamp + "." + content)
// where content is the JSON body, or the request URI for GET calls.
// Servers check it with SignatureFromHeader and VerifySignature.
package apiclient
