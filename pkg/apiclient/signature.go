package apiclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Header names set on signed requests.
const (
	HeaderSignature = "X-Portal-Signature"
	HeaderTimestamp = "X-Portal-Timestamp"
	HeaderRequestID = "X-Portal-Request-ID"
)

// Signature authenticates one request to the API.
type Signature struct {
	Value     string
	Timestamp int64
	RequestID string
}

// Apply sets the signature headers on h.
func (s Signature) Apply(h http.Header) {
	h.Set(HeaderSignature, s.Value)
	h.Set(HeaderTimestamp, strconv.FormatInt(s.Timestamp, 10))
	h.Set(HeaderRequestID, s.RequestID)
}

// SignPayload signs content with HMAC-SHA256 over "timestamp.content".
// POST requests sign the JSON body; GET requests sign the request URI.
func SignPayload(secret string, content []byte) (Signature, error) {
	if secret == "" {
		return Signature{}, fmt.Errorf("%w: secret is required", ErrInvalidConfiguration)
	}
	if len(content) == 0 {
		return Signature{}, fmt.Errorf("%w: nothing to sign", ErrInvalidPayload)
	}

	timestamp := time.Now().Unix()
	return Signature{
		Value:     computeSignature(secret, timestamp, content),
		Timestamp: timestamp,
		RequestID: uuid.New().String(),
	}, nil
}

// VerifySignature checks sig against content. A positive maxAge also rejects
// stale signatures and timestamps more than a minute in the future.
func VerifySignature(secret string, content []byte, sig Signature, maxAge time.Duration) error {
	if secret == "" {
		return fmt.Errorf("%w: secret is required", ErrInvalidConfiguration)
	}
	if sig.Value == "" {
		return fmt.Errorf("%w: signature is missing", ErrInvalidConfiguration)
	}

	if maxAge > 0 {
		age := time.Since(time.Unix(sig.Timestamp, 0))
		if age > maxAge {
			return fmt.Errorf("%w: signature timestamp too old: %v", ErrInvalidConfiguration, age)
		}
		if age < -time.Minute {
			return fmt.Errorf("%w: signature timestamp is in the future", ErrInvalidConfiguration)
		}
	}

	expected := computeSignature(secret, sig.Timestamp, content)
	if !hmac.Equal([]byte(expected), []byte(sig.Value)) {
		return fmt.Errorf("%w: signature mismatch", ErrInvalidConfiguration)
	}

	return nil
}

// SignatureFromHeader reads the signature headers written by Signature.Apply.
func SignatureFromHeader(h http.Header) (Signature, error) {
	sig := Signature{
		Value:     h.Get(HeaderSignature),
		RequestID: h.Get(HeaderRequestID),
	}

	if ts := h.Get(HeaderTimestamp); ts != "" {
		parsed, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return Signature{}, fmt.Errorf("%w: invalid timestamp format", ErrInvalidConfiguration)
		}
		sig.Timestamp = parsed
	}

	if sig.Value == "" || sig.Timestamp == 0 {
		return Signature{}, fmt.Errorf("%w: missing required signature headers", ErrInvalidConfiguration)
	}

	return sig, nil
}

func computeSignature(secret string, timestamp int64, content []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%d.%s", timestamp, content)
	return hex.EncodeToString(h.Sum(nil))
}
