package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daygo-app/daygo/pkg/billing"
)

func Test_CreateCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var args billing.CheckoutSessionArgs
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, "pro", args.PlanID)
		assert.Equal(t, "user-1", args.Reference)

		json.NewEncoder(w).Encode(billing.CheckoutSession{
			ID:  "cs_123",
			URL: "https://pay.example.com/cs_123",
		})
	}))
	defer srv.Close()

	client := billing.NewClient(srv.URL, "test-key")
	session, err := client.CreateCheckoutSession(context.Background(), billing.CheckoutSessionArgs{
		CustomerEmail: "a@b.c",
		PlanID:        "pro",
		Reference:     "user-1",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "cs_123", session.ID)
	assert.Equal(t, "https://pay.example.com/cs_123", session.URL)
}

func Test_GetSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/subscriptions/sub_1", r.URL.Path)

		json.NewEncoder(w).Encode(billing.Subscription{
			ID:        "sub_1",
			PlanID:    "pro",
			Status:    "active",
			Reference: "user-1",
		})
	}))
	defer srv.Close()

	client := billing.NewClient(srv.URL, "test-key")
	sub, err := client.GetSubscription(context.Background(), "sub_1")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "pro", sub.PlanID)
	assert.Equal(t, "active", sub.Status)
}

func Test_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no such subscription"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := billing.NewClient(srv.URL, "test-key")
	_, err := client.GetSubscription(context.Background(), "sub_missing")
	assert.Error(t, err)
}
