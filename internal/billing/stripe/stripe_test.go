package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		SecretKey:  "sk_test_123",
		PriceID:    "price_123",
		SuccessURL: "http://localhost:3000/ok",
		CancelURL:  "http://localhost:3000/cancel",
	})
	c.baseURL = srv.URL

	return c
}

func TestClient_CreateCustomer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "maria@example.com", r.PostForm.Get("email"))

		w.Write([]byte(`{"id": "cus_123"}`))
	})

	id, err := c.CreateCustomer(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cus_123", id)
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/sessions", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cus_123", r.PostForm.Get("customer"))
		assert.Equal(t, "subscription", r.PostForm.Get("mode"))
		assert.Equal(t, "price_123", r.PostForm.Get("line_items[0][price]"))

		w.Write([]byte(`{"url": "https://checkout.stripe.com/c/pay/xyz"}`))
	})

	url, err := c.CreateCheckoutSession(context.Background(), "cus_123")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/xyz", url)
}

func TestClient_APIErrorSurfacesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "No such price", "type": "invalid_request_error"}}`))
	})

	_, err := c.CreateCheckoutSession(context.Background(), "cus_123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such price")
}
