package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"subscription.created"}`)
	now := time.Unix(1700000000, 0)

	header := Sign(payload, "whsec_test", now)
	assert.NoError(t, VerifySignature(payload, header, "whsec_test", now))
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Unix(1700000000, 0)

	header := Sign(payload, "whsec_test", now)
	assert.ErrorIs(t, VerifySignature(payload, header, "whsec_other", now), ErrBadSignature)
}

func TestVerifySignatureTamperedPayload(t *testing.T) {
	now := time.Unix(1700000000, 0)
	header := Sign([]byte(`{"plan":"free"}`), "whsec_test", now)

	err := VerifySignature([]byte(`{"plan":"team"}`), header, "whsec_test", now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifySignatureStaleTimestamp(t *testing.T) {
	payload := []byte(`{}`)
	signedAt := time.Unix(1700000000, 0)

	header := Sign(payload, "whsec_test", signedAt)
	err := VerifySignature(payload, header, "whsec_test", signedAt.Add(time.Minute*10))
	assert.ErrorIs(t, err, ErrStaleSignature)
}

func TestVerifySignatureMalformedHeader(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.ErrorIs(t, VerifySignature([]byte(`{}`), "", "whsec_test", now), ErrMalformedHeader)
	assert.ErrorIs(t, VerifySignature([]byte(`{}`), "t=abc,v1=def", "whsec_test", now), ErrMalformedHeader)
	assert.ErrorIs(t, VerifySignature([]byte(`{}`), "v1=def", "whsec_test", now), ErrMalformedHeader)
}

func TestParseWebhookEvent(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"subscription.updated","subscription":{"id":"sub_1","plan_id":"pro","status":"active","reference":"user-1"}}`)

	event, err := ParseWebhookEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, EVENT_SUBSCRIPTION_UPDATED, event.Type)
	assert.Equal(t, "sub_1", event.Subscription.ID)
	assert.Equal(t, "pro", event.Subscription.PlanID)

	_, err = ParseWebhookEvent([]byte(`{"id":"evt_2"}`))
	assert.Error(t, err)
}
