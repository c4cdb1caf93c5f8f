package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SignatureHeader carries the provider signature, e.g.
	// "t=1700000000,v1=5f3a...".
	SignatureHeader = "X-Billing-Signature"

	signatureTolerance = time.Minute * 5
)

var (
	ErrBadSignature    = errors.New("webhook signature mismatch")
	ErrStaleSignature  = errors.New("webhook timestamp outside tolerance")
	ErrMalformedHeader = errors.New("malformed signature header")
)

// VerifySignature checks the timestamped HMAC-SHA256 signature over the raw
// webhook payload. The signed message is "<timestamp>.<payload>".
func VerifySignature(payload []byte, header, secret string, now time.Time) error {
	var (
		timestamp int64
		provided  string
	)
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return ErrMalformedHeader
			}
			timestamp = ts
		case "v1":
			provided = kv[1]
		}
	}

	if timestamp == 0 || provided == "" {
		return ErrMalformedHeader
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return ErrStaleSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(provided)) {
		return ErrBadSignature
	}
	return nil
}

// Sign produces a signature header for a payload. Used by tests and local
// tooling.
func Sign(payload []byte, secret string, now time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", now.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

const (
	EVENT_SUBSCRIPTION_CREATED  = "subscription.created"
	EVENT_SUBSCRIPTION_UPDATED  = "subscription.updated"
	EVENT_SUBSCRIPTION_CANCELED = "subscription.canceled"
)

type WebhookEvent struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	CreatedAt    int64        `json:"created_at"`
	Subscription Subscription `json:"subscription"`
}

func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload, %w", err)
	}
	if event.Type == "" {
		return nil, errors.New("webhook payload missing event type")
	}
	return &event, nil
}
