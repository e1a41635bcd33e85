package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the external payment gateway. The gateway is opaque
// to the rest of the system; all it does here is turn a price into a
// client-usable payment handle.
type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a gateway client.
func NewClient(apiURL, secretKey string) *Client {
	return &Client{
		apiURL:     apiURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type createIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// CreateIntent registers a payment intent for the given price (major
// currency units) and returns the client secret. Each call carries a
// fresh idempotency key so a gateway-side retry cannot double-charge.
func (c *Client) CreateIntent(ctx context.Context, price float64) (string, error) {
	body := createIntentRequest{
		Amount:   int64(math.Round(price * 100)),
		Currency: "usd",
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/payment_intents", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.New("unexpected status: " + resp.Status)
	}

	var intentResp createIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intentResp); err != nil {
		return "", err
	}
	if intentResp.ClientSecret == "" {
		return "", errors.New("gateway returned no client secret")
	}

	return intentResp.ClientSecret, nil
}
