package polymarket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gammaPayload() []gammaMarket {
	return []gammaMarket{
		{
			ConditionID: "0xbtc",
			Question:    "BTC Up or Down - September 1, 3PM ET",
			Tokens: []gammaToken{
				{TokenID: "btc-up", Outcome: "Up"},
				{TokenID: "btc-down", Outcome: "Down"},
			},
			Active: true,
		},
		{
			ConditionID: "0xeth",
			Question:    "ETH Up or Down - September 1, 3PM ET",
			Tokens: []gammaToken{
				{TokenID: "eth-up", Outcome: "Up"},
				{TokenID: "eth-down", Outcome: "Down"},
			},
			Active: true,
		},
		{
			ConditionID: "0xother",
			Question:    "Will BTC hit 150k this year?", // sin "Up or Down"
			Active:      true,
		},
	}
}

func TestFetchMarkets_FiltersAndDeduplicates(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		assert.Equal(t, "false", r.URL.Query().Get("closed"))
		assert.Equal(t, "crypto", r.URL.Query().Get("tag"))
		json.NewEncoder(w).Encode(gammaPayload())
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	// dos assets: dos requests independientes sobre el mismo payload
	g := NewGammaProvider(client, []string{"BTC", "ETH"})

	markets, err := g.FetchMarkets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())

	// BTC primero (orden de assets), ETH después, sin duplicados,
	// y el mercado sin "Up or Down" queda fuera
	require.Len(t, markets, 2)
	assert.Equal(t, "0xbtc", markets[0].ConditionID)
	assert.Equal(t, "0xeth", markets[1].ConditionID)
	require.Len(t, markets[0].Tokens, 2)
	assert.Equal(t, "btc-up", markets[0].Tokens[0].TokenID)
}

func TestFetchMarkets_FailedAssetContributesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	g := NewGammaProvider(client, []string{"BTC"})

	markets, err := g.FetchMarkets(context.Background())
	require.NoError(t, err, "un asset caído no es un error del ciclo")
	assert.Empty(t, markets)
}
