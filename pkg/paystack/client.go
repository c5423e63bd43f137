package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the Paystack API base URL.
const DefaultBaseURL = "https://api.paystack.co"

// Config holds the settings for constructing a Client.
type Config struct {
	// BaseURL overrides the API host; empty means DefaultBaseURL.
	BaseURL   string
	SecretKey string
}

// Client is a minimal HTTP client for the Paystack API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	debug      bool
}

// NewClient constructs a new Paystack client with sane defaults.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		secretKey:  cfg.SecretKey,
		debug:      os.Getenv("ENV") == "development",
	}
}

// VerifyTransaction queries the status of a transaction by its reference.
// The response envelope is decoded regardless of HTTP status so that a
// non-2xx body still yields the gateway's message.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResponse, error) {
	endpoint := "/transaction/verify/" + url.PathEscape(reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[PAYSTACK] Incoming response")
	}

	var result VerifyResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	result.HTTPStatus = resp.StatusCode
	return &result, nil
}
