package strategy

import (
	"testing"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() Params {
	return Params{
		MinSpread:      0.03,
		MaxPositionPct: 0.80,
		MinBalance:     0.50,
		FeePerSide:     0.015,
	}
}

func makeOpp(priceUp, priceDown float64) domain.Opportunity {
	return domain.Opportunity{
		ConditionID: "0xtest",
		Question:    "BTC Up or Down - test",
		TokenIDUp:   "tok-up",
		TokenIDDown: "tok-down",
		PriceUp:     priceUp,
		PriceDown:   priceDown,
		Spread:      1.0 - (priceUp + priceDown),
	}
}

func TestDecide_ExecutableSizing(t *testing.T) {
	// UP=0.47 DOWN=0.49 → spread 4%, net 1%
	opp := makeOpp(0.47, 0.49)
	d := Decide(opp, 10.0, defaultParams())

	require.True(t, d.Execute, "reason: %s", d.Reason)

	// available=9.5, position=min(0.8, 0.4)=0.4, spend=3.8
	assert.InDelta(t, 1.8604, d.SizeUp, 0.0001)
	assert.InDelta(t, 1.9396, d.SizeDown, 0.0001)
	assert.InDelta(t, 0.038, d.NetProfitEst, 0.000001)
	assert.NotEmpty(t, d.Reason)
}

func TestDecide_FeesEatSpread(t *testing.T) {
	// spread 2.5% < 3% de fees round-trip → primer guard
	opp := makeOpp(0.50, 0.475)
	d := Decide(opp, 10.0, defaultParams())

	require.False(t, d.Execute)
	assert.Contains(t, d.Reason, "fees")
}

func TestDecide_BelowMinimumSpread(t *testing.T) {
	// spread 3.5%: sobrevive el fee gate (net 0.5%) pero queda bajo un
	// mínimo de 4%: el gate usa el spread BRUTO, no el neto.
	p := defaultParams()
	p.MinSpread = 0.04
	opp := makeOpp(0.47, 0.495)
	d := Decide(opp, 10.0, p)

	require.False(t, d.Execute)
	assert.Contains(t, d.Reason, "below minimum")
}

func TestDecide_GuardOrder_FeeGateFirst(t *testing.T) {
	// spread 2% falla ambos gates; el reason debe ser el del primero (fees).
	opp := makeOpp(0.49, 0.49)
	d := Decide(opp, 10.0, defaultParams())

	require.False(t, d.Execute)
	assert.Contains(t, d.Reason, "fees")
	assert.NotContains(t, d.Reason, "minimum")
}

func TestDecide_CapitalAtSafetyFloor(t *testing.T) {
	opp := makeOpp(0.47, 0.49)

	d := Decide(opp, 0.50, defaultParams())
	require.False(t, d.Execute)
	assert.Contains(t, d.Reason, "safety floor")

	d = Decide(opp, 0.30, defaultParams())
	require.False(t, d.Execute)
	assert.Contains(t, d.Reason, "safety floor")
}

func TestDecide_PositionCappedAtMax(t *testing.T) {
	// spread 10% → rampa lineal daría 100%, cap en 80%
	opp := makeOpp(0.45, 0.45)
	d := Decide(opp, 10.5, defaultParams())

	require.True(t, d.Execute)
	// available=10.0, spend=8.0, split 50/50
	assert.InDelta(t, 4.0, d.SizeUp, 0.0001)
	assert.InDelta(t, 4.0, d.SizeDown, 0.0001)
	// net spread = 0.10-0.03 = 0.07 → est = 0.56
	assert.InDelta(t, 0.56, d.NetProfitEst, 0.000001)
}

func TestDecide_ProportionalSplit(t *testing.T) {
	opp := makeOpp(0.60, 0.30)
	d := Decide(opp, 10.0, defaultParams())

	require.True(t, d.Execute)
	// el split sigue los precios: UP recibe el doble que DOWN
	assert.InDelta(t, d.SizeUp/d.SizeDown, 2.0, 0.001)
	// la suma es el total a gastar: available=9.5 × min(0.8, 1.0)=0.8
	assert.InDelta(t, 9.5*0.8, d.SizeUp+d.SizeDown, 0.001)
}

func TestDecide_RejectionCarriesZeroSizes(t *testing.T) {
	rejections := []domain.Opportunity{
		makeOpp(0.50, 0.49), // fees
		makeOpp(0.49, 0.49), // fees + minimum
	}
	for _, opp := range rejections {
		d := Decide(opp, 10.0, defaultParams())
		require.False(t, d.Execute)
		assert.Zero(t, d.SizeUp)
		assert.Zero(t, d.SizeDown)
		assert.Zero(t, d.NetProfitEst)
		assert.NotEmpty(t, d.Reason)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	opp := makeOpp(0.47, 0.49)
	first := Decide(opp, 10.0, defaultParams())
	for n := 0; n < 5; n++ {
		assert.Equal(t, first, Decide(opp, 10.0, defaultParams()))
	}
}
