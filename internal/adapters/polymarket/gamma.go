package polymarket

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
)

const (
	gammaMarketsPath = "/markets"
	gammaPageSize    = 100
	gammaTag         = "crypto"
)

// GammaProvider implementa ports.MarketProvider contra la API de Gamma.
type GammaProvider struct {
	client *Client
	assets []string
}

// NewGammaProvider crea un provider para los assets dados (ej. BTC, ETH).
func NewGammaProvider(client *Client, assets []string) *GammaProvider {
	return &GammaProvider{client: client, assets: assets}
}

// FetchMarkets obtiene los mercados "Up or Down" activos para cada asset.
// Cada asset es una request independiente: un fallo aporta cero mercados
// para ese asset y se loguea, nunca aborta el ciclo. El resultado se
// deduplica por condition_id preservando el orden de primera aparición.
func (g *GammaProvider) FetchMarkets(ctx context.Context) ([]domain.Market, error) {
	// Slice indexado por asset para que el orden del resultado sea
	// determinista aunque las requests completen en cualquier orden.
	perAsset := make([][]domain.Market, len(g.assets))

	var wg sync.WaitGroup
	for i, asset := range g.assets {
		i, asset := i, asset
		wg.Add(1)
		go func() {
			defer wg.Done()
			markets, err := g.fetchAssetMarkets(ctx, asset)
			if err != nil {
				slog.Warn("gamma: fetch markets failed for asset", "asset", asset, "err", err)
				return
			}
			perAsset[i] = markets
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	var unique []domain.Market
	for _, markets := range perAsset {
		for _, m := range markets {
			if m.ConditionID == "" || seen[m.ConditionID] {
				continue
			}
			seen[m.ConditionID] = true
			unique = append(unique, m)
		}
	}

	slog.Debug("gamma: active Up/Down markets", "count", len(unique))
	return unique, nil
}

// fetchAssetMarkets hace una request a Gamma y filtra los mercados Up/Down
// del asset dado.
func (g *GammaProvider) fetchAssetMarkets(ctx context.Context, asset string) ([]domain.Market, error) {
	ctx, cancel := context.WithTimeout(ctx, marketsTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("active", "true")
	q.Set("closed", "false")
	q.Set("tag", gammaTag)
	q.Set("limit", fmt.Sprint(gammaPageSize))

	reqURL := g.client.gammaBase + gammaMarketsPath + "?" + q.Encode()

	var resp gammaMarketsResponse
	if err := g.client.get(ctx, g.client.gammaLimiter, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("gamma.fetchAssetMarkets %s: %w", asset, err)
	}

	var filtered []gammaMarket
	for _, m := range resp {
		if strings.Contains(m.Question, asset) && strings.Contains(m.Question, "Up or Down") {
			filtered = append(filtered, m)
		}
	}
	return mapGammaMarkets(filtered), nil
}
