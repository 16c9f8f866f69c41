package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_test", user)
		assert.Equal(t, "secret_test", pass)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(50000), payload["amount"])
		assert.Equal(t, "INR", payload["currency"])
		assert.Equal(t, "rcpt_1", payload["receipt"])

		json.NewEncoder(w).Encode(Order{
			ID:       "order_abc123",
			Amount:   50000,
			Currency: "INR",
			Receipt:  "rcpt_1",
			Status:   "created",
		})
	}))
	defer srv.Close()

	gw := NewRazorpayGateway(RazorpayConfig{
		KeyID:   "key_test",
		Secret:  "secret_test",
		BaseURL: srv.URL,
	})

	order, err := gw.CreateOrder(context.Background(), 50000, "rcpt_1")
	require.NoError(t, err)

	assert.Equal(t, "order_abc123", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer srv.Close()

	gw := NewRazorpayGateway(RazorpayConfig{BaseURL: srv.URL})

	_, err := gw.CreateOrder(context.Background(), 100, "rcpt_2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCreateOrderMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	gw := NewRazorpayGateway(RazorpayConfig{BaseURL: srv.URL})

	_, err := gw.CreateOrder(context.Background(), 100, "rcpt_3")
	assert.Error(t, err)
}
