package executor

// executor.go: ejecución concurrente de las dos patas del arbitraje.
//
// Las órdenes UP y DOWN se envían en paralelo: el envío secuencial deja la
// segunda pata expuesta a que el mercado se mueva mientras la primera está
// pendiente. Cada pata es independiente; el fallo de una NO cancela la otra.
// Una pata suelta queda como posición sin cobertura que requiere revisión
// manual; riesgo conocido y aceptado.

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/ports"
	"github.com/google/uuid"
)

// Coordinator ejecuta ambas patas de un trade aceptado.
type Coordinator struct {
	orders ports.OrderExecutor
}

// New crea un Coordinator sobre el executor de órdenes dado.
func New(orders ports.OrderExecutor) *Coordinator {
	return &Coordinator{orders: orders}
}

// Execute envía ambas patas en paralelo y devuelve el resultado combinado.
// El trade es exitoso solo si las dos patas confirman fill.
func (c *Coordinator) Execute(ctx context.Context, opp domain.Opportunity, decision domain.TradeDecision) domain.ExecutionResult {
	pairID := uuid.NewString()

	slog.Info("executing arb",
		"pair_id", pairID,
		"market", domain.TruncateQuestion(opp.Question, opp.ConditionID, 60),
		"size_up", fmt.Sprintf("%.4f", decision.SizeUp),
		"size_down", fmt.Sprintf("%.4f", decision.SizeDown),
		"profit_est", fmt.Sprintf("%.4f", decision.NetProfitEst),
	)

	result := domain.ExecutionResult{PairID: pairID}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Up = c.placeLeg(ctx, domain.PlaceOrderRequest{
			PairID:  pairID,
			TokenID: opp.TokenIDUp,
			Price:   opp.PriceUp,
			Size:    decision.SizeUp,
			Label:   "UP",
		})
	}()
	go func() {
		defer wg.Done()
		result.Down = c.placeLeg(ctx, domain.PlaceOrderRequest{
			PairID:  pairID,
			TokenID: opp.TokenIDDown,
			Price:   opp.PriceDown,
			Size:    decision.SizeDown,
			Label:   "DOWN",
		})
	}()
	wg.Wait()

	switch {
	case result.Success():
		slog.Info("both legs filled, arb locked", "pair_id", pairID)
	case result.Partial():
		slog.Warn("PARTIAL FILL: manual review needed",
			"pair_id", pairID,
			"up_filled", result.Up.Filled(),
			"down_filled", result.Down.Filled(),
		)
	default:
		slog.Warn("both legs failed", "pair_id", pairID)
	}

	return result
}

// placeLeg envía una pata y captura su fallo sin propagarlo: el resultado
// se reporta como valor para que la pata hermana no se vea afectada.
func (c *Coordinator) placeLeg(ctx context.Context, req domain.PlaceOrderRequest) domain.LegResult {
	order, err := c.orders.PlaceOrder(ctx, req)
	if err != nil {
		slog.Error("leg order failed", "pair_id", req.PairID, "leg", req.Label, "err", err)
		return domain.LegResult{Err: err}
	}
	return domain.LegResult{OrderID: order.OrderID}
}
