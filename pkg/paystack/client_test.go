package paystack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"id": 42,
				"status": "success",
				"reference": "ref-123",
				"amount": 500000,
				"currency": "NGN",
				"channel": "card"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_abc"})

	resp, err := client.VerifyTransaction(context.Background(), "ref-123")
	require.NoError(t, err)

	assert.True(t, resp.Status)
	assert.Equal(t, http.StatusOK, resp.HTTPStatus)
	assert.Equal(t, "success", resp.Data.Status)
	assert.Equal(t, int64(500000), resp.Data.Amount)
	assert.Equal(t, "card", resp.Data.Channel)
}

func TestVerifyTransactionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_abc"})

	resp, err := client.VerifyTransaction(context.Background(), "missing")
	require.NoError(t, err)

	assert.False(t, resp.Status)
	assert.Equal(t, http.StatusNotFound, resp.HTTPStatus)
	assert.Equal(t, "Transaction reference not found", resp.Message)
}

func TestVerifyTransactionEscapesReference(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"status": true}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_abc"})

	_, err := client.VerifyTransaction(context.Background(), "ref/with space")
	require.NoError(t, err)
	assert.Equal(t, "/transaction/verify/ref%2Fwith%20space", gotPath)
}
