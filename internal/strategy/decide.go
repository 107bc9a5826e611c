package strategy

// decide.go: sizing y go/no-go para una oportunidad.
//
// El orden de los guards es observable (la primera condición que falla
// determina el reason) y debe preservarse:
//   1. fees sobre el spread neto
//   2. mínimo sobre el spread BRUTO, margen intencional, aunque el neto
//      sea positivo
//   3. safety floor de capital
// Después: sizing lineal con el spread, split proporcional a los precios.

import (
	"fmt"
	"math"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
)

// Params son los parámetros del decision engine.
type Params struct {
	MinSpread      float64 // umbral sobre el spread bruto
	MaxPositionPct float64 // fracción máxima del capital disponible
	MinBalance     float64 // USDC que nunca se arriesgan
	FeePerSide     float64 // taker fee estimado por pata
}

// Decide convierte una oportunidad y un snapshot de capital en una decisión
// de trade. Es una función pura: sin I/O, sin mutación, determinista.
func Decide(opp domain.Opportunity, capital float64, p Params) domain.TradeDecision {
	netSpread := opp.Spread - p.FeePerSide*2

	if netSpread <= 0 {
		return domain.Reject(fmt.Sprintf(
			"spread %.3f eaten by fees (%.3f)", opp.Spread, p.FeePerSide*2))
	}

	if opp.Spread < p.MinSpread {
		return domain.Reject(fmt.Sprintf(
			"spread %.1f%% below minimum %.1f%%", opp.Spread*100, p.MinSpread*100))
	}

	available := capital - p.MinBalance
	if available <= 0 {
		return domain.Reject(fmt.Sprintf(
			"capital %.4f at/below safety floor", capital))
	}

	// Sizing dinámico: rampa lineal de 0 en spread=0 hasta el cap en
	// spread=MaxPositionPct/10 (p.ej. 80% al 8%).
	positionPct := math.Min(p.MaxPositionPct, opp.Spread*10)
	totalSpend := available * positionPct

	// Split proporcional al precio de cada pata: ambas ejecutan al precio
	// cotizado con la misma exposición notional total.
	totalPrice := opp.PriceUp + opp.PriceDown
	sizeUp := totalSpend * (opp.PriceUp / totalPrice)
	sizeDown := totalSpend * (opp.PriceDown / totalPrice)

	// Una pata siempre resuelve a $1: el profit por dólar es el spread neto.
	netProfitEst := netSpread * totalSpend

	return domain.TradeDecision{
		Execute:      true,
		SizeUp:       round4(sizeUp),
		SizeDown:     round4(sizeDown),
		NetProfitEst: round6(netProfitEst),
		Reason: fmt.Sprintf("net spread %.2f%%, position %.0f%% of capital",
			netSpread*100, positionPct*100),
	}
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
