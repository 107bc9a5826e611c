package polymarket

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() Creds {
	return Creds{
		APIKey:     "key-1",
		Secret:     base64.StdEncoding.EncodeToString([]byte("super-secret")),
		Passphrase: "pass-1",
		Address:    "0xwallet",
	}
}

func TestNewTradingClient_RequiresCreds(t *testing.T) {
	client := NewClient("", "")

	_, err := NewTradingClient(client, Creds{})
	assert.Error(t, err)

	_, err = NewTradingClient(client, testCreds())
	assert.NoError(t, err)
}

func TestPlaceOrder_SendsAuthAndReturnsFill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("POLY_API_KEY"))
		assert.Equal(t, "pass-1", r.Header.Get("POLY_PASSPHRASE"))
		assert.Equal(t, "0xwallet", r.Header.Get("POLY_ADDRESS"))
		assert.NotEmpty(t, r.Header.Get("POLY_TIMESTAMP"))
		assert.NotEmpty(t, r.Header.Get("POLY_SIGNATURE"))

		var body orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok-up", body.TokenID)
		assert.Equal(t, "BUY", body.Side)
		assert.Equal(t, 0.47, body.Price)
		assert.Equal(t, 1.8604, body.Size)

		json.NewEncoder(w).Encode(orderResponse{
			Success: true, OrderID: "ord-123", Status: "matched",
		})
	}))
	defer srv.Close()

	tc, err := NewTradingClient(NewClient(srv.URL, srv.URL), testCreds())
	require.NoError(t, err)

	order, err := tc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		PairID:  "pair-1",
		TokenID: "tok-up",
		Price:   0.47,
		Size:    1.8604,
		Label:   "UP",
	})

	require.NoError(t, err)
	assert.Equal(t, "ord-123", order.OrderID)
	assert.Equal(t, "matched", order.Status)
}

func TestPlaceOrder_CLOBRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(orderResponse{
			Success: false, ErrorMsg: "not enough balance",
		})
	}))
	defer srv.Close()

	tc, err := NewTradingClient(NewClient(srv.URL, srv.URL), testCreds())
	require.NoError(t, err)

	_, err = tc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TokenID: "tok-up", Price: 0.47, Size: 1.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough balance")
}

func TestPlaceOrder_EmptyOrderIDIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(orderResponse{Success: true})
	}))
	defer srv.Close()

	tc, err := NewTradingClient(NewClient(srv.URL, srv.URL), testCreds())
	require.NoError(t, err)

	_, err = tc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TokenID: "tok-up", Price: 0.47, Size: 1.0,
	})
	assert.Error(t, err)
}

func TestL2Headers_DeterministicSignature(t *testing.T) {
	creds := testCreds()
	secret, err := base64.StdEncoding.DecodeString(creds.Secret)
	require.NoError(t, err)

	h1 := l2HeadersAt(creds, secret, "POST", "/order", `{"a":1}`, "1700000000")
	h2 := l2HeadersAt(creds, secret, "POST", "/order", `{"a":1}`, "1700000000")
	assert.Equal(t, h1["POLY_SIGNATURE"], h2["POLY_SIGNATURE"])

	// cuerpo distinto → firma distinta
	h3 := l2HeadersAt(creds, secret, "POST", "/order", `{"a":2}`, "1700000000")
	assert.NotEqual(t, h1["POLY_SIGNATURE"], h3["POLY_SIGNATURE"])

	// la firma es base64 válido
	_, err = base64.StdEncoding.DecodeString(h1["POLY_SIGNATURE"])
	assert.NoError(t, err)
}
