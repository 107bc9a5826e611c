package scanner

import (
	"context"
	"errors"
	"testing"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarkets struct {
	markets []domain.Market
	err     error
}

func (f *fakeMarkets) FetchMarkets(context.Context) ([]domain.Market, error) {
	return f.markets, f.err
}

// fakeBooks devuelve precios fijos por token; los tokens ausentes fallan.
type fakeBooks struct {
	prices map[string]float64
	empty  map[string]bool
}

func (f *fakeBooks) FetchBestAsk(_ context.Context, tokenID string) (float64, bool, error) {
	if f.empty[tokenID] {
		return 0, false, nil
	}
	p, ok := f.prices[tokenID]
	if !ok {
		return 0, false, errors.New("book fetch failed")
	}
	return p, true, nil
}

func upDownMarket(id string, upID, downID string) domain.Market {
	return domain.Market{
		ConditionID: id,
		Question:    "BTC Up or Down - " + id,
		Tokens: []domain.Token{
			{TokenID: upID, Outcome: "Up"},
			{TokenID: downID, Outcome: "Down"},
		},
	}
}

func TestScanOnce_SelectsLargestSpread(t *testing.T) {
	markets := &fakeMarkets{markets: []domain.Market{
		upDownMarket("m1", "u1", "d1"),
		upDownMarket("m2", "u2", "d2"),
		upDownMarket("m3", "u3", "d3"),
	}}
	books := &fakeBooks{prices: map[string]float64{
		"u1": 0.48, "d1": 0.50, // spread 0.02
		"u2": 0.45, "d2": 0.49, // spread 0.06, la mejor
		"u3": 0.47, "d3": 0.49, // spread 0.04
	}}

	s := New(markets, books, 2)
	res := s.ScanOnce(context.Background())

	require.True(t, res.Found)
	assert.Equal(t, "m2", res.Best.ConditionID)
	assert.InDelta(t, 0.06, res.Best.Spread, 1e-9)
	assert.Equal(t, 3, res.MarketsScanned)
	assert.Equal(t, 3, res.Candidates)
}

func TestScanOnce_TieBreakFirstSeen(t *testing.T) {
	markets := &fakeMarkets{markets: []domain.Market{
		upDownMarket("first", "u1", "d1"),
		upDownMarket("second", "u2", "d2"),
	}}
	books := &fakeBooks{prices: map[string]float64{
		"u1": 0.47, "d1": 0.49,
		"u2": 0.47, "d2": 0.49, // mismo spread
	}}

	s := New(markets, books, 4)
	for n := 0; n < 10; n++ {
		res := s.ScanOnce(context.Background())
		require.True(t, res.Found)
		assert.Equal(t, "first", res.Best.ConditionID)
	}
}

func TestScanOnce_ExcludesNonPositiveSpread(t *testing.T) {
	markets := &fakeMarkets{markets: []domain.Market{
		upDownMarket("m1", "u1", "d1"),
		upDownMarket("m2", "u2", "d2"),
	}}
	books := &fakeBooks{prices: map[string]float64{
		"u1": 0.50, "d1": 0.50, // suma exacta 1.0 → spread 0
		"u2": 0.60, "d2": 0.55, // suma > 1.0
	}}

	s := New(markets, books, 2)
	res := s.ScanOnce(context.Background())

	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Candidates)
	assert.Equal(t, 2, res.MarketsScanned)
}

func TestScanOnce_PriceFetchFailureSkipsMarketOnly(t *testing.T) {
	markets := &fakeMarkets{markets: []domain.Market{
		upDownMarket("broken", "u1", "missing"), // DOWN falla
		upDownMarket("ok", "u2", "d2"),
	}}
	books := &fakeBooks{prices: map[string]float64{
		"u1": 0.40,
		"u2": 0.47, "d2": 0.49,
	}}

	s := New(markets, books, 2)
	res := s.ScanOnce(context.Background())

	require.True(t, res.Found)
	assert.Equal(t, "ok", res.Best.ConditionID)
	assert.Equal(t, 1, res.Candidates)
}

func TestScanOnce_EmptyBookSkipsMarket(t *testing.T) {
	markets := &fakeMarkets{markets: []domain.Market{
		upDownMarket("m1", "u1", "d1"),
	}}
	books := &fakeBooks{
		prices: map[string]float64{"u1": 0.40, "d1": 0.40},
		empty:  map[string]bool{"d1": true},
	}

	s := New(markets, books, 1)
	res := s.ScanOnce(context.Background())
	assert.False(t, res.Found)
}

func TestScanOnce_SkipsMarketsWithoutBothOutcomes(t *testing.T) {
	onlyUp := domain.Market{
		ConditionID: "only-up",
		Question:    "ETH Up or Down - half",
		Tokens: []domain.Token{
			{TokenID: "u1", Outcome: "Up"},
			{TokenID: "x1", Outcome: "Maybe"},
		},
	}
	markets := &fakeMarkets{markets: []domain.Market{onlyUp}}
	books := &fakeBooks{prices: map[string]float64{"u1": 0.40, "x1": 0.40}}

	s := New(markets, books, 1)
	res := s.ScanOnce(context.Background())
	assert.False(t, res.Found)
}

func TestScanOnce_CaseInsensitiveOutcomes(t *testing.T) {
	m := domain.Market{
		ConditionID: "caps",
		Question:    "SOL Up or Down - caps",
		Tokens: []domain.Token{
			{TokenID: "u1", Outcome: "UP"},
			{TokenID: "d1", Outcome: "down"},
		},
	}
	markets := &fakeMarkets{markets: []domain.Market{m}}
	books := &fakeBooks{prices: map[string]float64{"u1": 0.45, "d1": 0.45}}

	s := New(markets, books, 1)
	res := s.ScanOnce(context.Background())

	require.True(t, res.Found)
	assert.Equal(t, "u1", res.Best.TokenIDUp)
	assert.Equal(t, "d1", res.Best.TokenIDDown)
}

func TestScanOnce_FetchErrorYieldsEmptyCycle(t *testing.T) {
	markets := &fakeMarkets{err: errors.New("gamma down")}
	s := New(markets, &fakeBooks{}, 1)

	res := s.ScanOnce(context.Background())
	assert.False(t, res.Found)
	assert.Zero(t, res.MarketsScanned)
}
