package chapa

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req InitializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "747.00", req.Amount)
		assert.Equal(t, "ETB", req.Currency)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "success",
			"message": "Hosted Link",
			"data": map[string]string{
				"checkout_url": "https://checkout.chapa.co/checkout/payment/abc123",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", nil)

	url, err := client.InitializePayment(context.Background(), InitializeRequest{
		Amount:   "747.00",
		Currency: "ETB",
		Email:    "learner@example.com",
		TxRef:    "chapa_subscription_x_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.chapa.co/checkout/payment/abc123", url)
}

func TestInitializePaymentGatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "failed",
			"message": "Invalid currency",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", nil)

	_, err := client.InitializePayment(context.Background(), InitializeRequest{Currency: "XYZ"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGatewayError))
}

func TestVerifyTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/chapa_subscription_x_1", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "success",
			"message": "Payment details",
			"data": map[string]interface{}{
				"tx_ref":    "chapa_subscription_x_1",
				"reference": "APq3bsZErzk",
				"status":    "success",
				"amount":    747.0,
				"currency":  "ETB",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", nil)

	result, err := client.VerifyTransaction(context.Background(), "chapa_subscription_x_1")
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, int64(74700), result.AmountCents)
	assert.Equal(t, "ETB", result.Currency)
	assert.Equal(t, "APq3bsZErzk", result.Reference)
}

func TestVerifyTransactionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"status": "failed", "message": "not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", nil)

	_, err := client.VerifyTransaction(context.Background(), "chapa_subscription_missing_1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransactionNotFound))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "249.00", FormatAmount(24900))
	assert.Equal(t, "672.30", FormatAmount(67230))
	assert.Equal(t, "0.05", FormatAmount(5))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"tx_ref":"chapa_subscription_x_1","status":"success"}`)
	mac := hmac.New(sha256.New, []byte("whsec"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifySignature("whsec", body, valid))
	assert.False(t, VerifySignature("whsec", body, "deadbeef"))
	assert.False(t, VerifySignature("other", body, valid))
	assert.False(t, VerifySignature("", body, valid))
	assert.False(t, VerifySignature("whsec", body, ""))
}
