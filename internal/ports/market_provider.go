package ports

import (
	"context"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
)

// MarketProvider obtiene los mercados Up/Down activos desde Gamma.
type MarketProvider interface {
	// FetchMarkets hace una request independiente por cada asset configurado
	// y devuelve la unión deduplicada por condition_id (primera aparición gana).
	// Un keyword que falla aporta cero mercados, nunca aborta el ciclo.
	FetchMarkets(ctx context.Context) ([]domain.Market, error)
}
