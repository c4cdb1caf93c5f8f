package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the hosted payment provider's REST API. The provider is an
// opaque collaborator; only checkout-session creation and subscription reads
// are used.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: time.Second * 30,
		},
	}
}

type CheckoutSessionArgs struct {
	CustomerEmail string `json:"customer_email"`
	PlanID        string `json:"plan_id"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
	Reference     string `json:"reference"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Subscription is the provider's view of a subscription, fetched during
// checkout callbacks and periodic reconciliation.
type Subscription struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	PlanID     string `json:"plan_id"`
	Status     string `json:"status"`
	PeriodEnd  int64  `json:"period_end"`
	Reference  string `json:"reference"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, args CheckoutSessionArgs) (*CheckoutSession, error) {
	var result CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", args, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetSubscription(ctx context.Context, subID string) (*Subscription, error) {
	var result Subscription
	if err := c.do(ctx, http.MethodGet, "/v1/subscriptions/"+subID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("billing provider responded %d: %s", resp.StatusCode, string(raw))
	}

	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("failed to decode billing provider response, %w", err)
		}
	}
	return nil
}
