package scanner

import (
	"context"
	"log/slog"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/ports"
	"golang.org/x/sync/errgroup"
)

// Scanner descubre oportunidades de arbitraje Up/Down: mercados cuyos
// mejores asks suman menos de $1.00.
type Scanner struct {
	markets ports.MarketProvider
	books   ports.BookProvider
	workers int
}

// New crea un Scanner con las dependencias inyectadas.
// workers limita cuántos mercados se inspeccionan en paralelo; 0 = auto.
func New(markets ports.MarketProvider, books ports.BookProvider, workers int) *Scanner {
	return &Scanner{markets: markets, books: books, workers: workers}
}

// ScanResult es el resumen de un ciclo de escaneo.
type ScanResult struct {
	MarketsScanned int
	Candidates     int
	Best           domain.Opportunity
	Found          bool
}

// ScanOnce ejecuta un ciclo completo: fetch de mercados, chequeo concurrente
// de cada uno, y selección de la oportunidad con mayor spread. Un ciclo sin
// candidatos es un resultado normal, no un error.
func (s *Scanner) ScanOnce(ctx context.Context) ScanResult {
	markets, err := s.markets.FetchMarkets(ctx)
	if err != nil {
		slog.Warn("scanner: fetch markets failed", "err", err)
		return ScanResult{}
	}
	if len(markets) == 0 {
		return ScanResult{}
	}

	candidates := s.checkMarkets(ctx, markets)

	result := ScanResult{MarketsScanned: len(markets)}
	// Selección determinista: recorrido en orden de mercado con > estricto,
	// así en empate gana la primera vista.
	for _, opp := range candidates {
		if opp == nil {
			continue
		}
		result.Candidates++
		if !result.Found || opp.Spread > result.Best.Spread {
			result.Best = *opp
			result.Found = true
		}
	}

	if result.Found {
		slog.Info("opportunity found",
			"market", domain.TruncateQuestion(result.Best.Question, result.Best.ConditionID, 60),
			"up", result.Best.PriceUp,
			"down", result.Best.PriceDown,
			"spread", result.Best.Spread,
		)
	} else {
		slog.Debug("no opportunities this scan", "markets", len(markets))
	}

	return result
}

// checkMarkets inspecciona todos los mercados con un worker pool y devuelve
// un slice alineado por índice con la oportunidad de cada mercado (o nil).
// El orden por índice mantiene la selección determinista aunque los workers
// completen en cualquier orden.
func (s *Scanner) checkMarkets(ctx context.Context, markets []domain.Market) []*domain.Opportunity {
	workers := s.workers
	if workers <= 0 {
		workers = 8
	}
	if workers > len(markets) {
		workers = len(markets)
	}

	results := make([]*domain.Opportunity, len(markets))
	workCh := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for idx := range workCh {
				results[idx] = s.checkMarket(ctx, markets[idx])
			}
			return nil
		})
	}

	for i := range markets {
		workCh <- i
	}
	close(workCh)
	g.Wait()

	return results
}

// checkMarket evalúa un mercado: identifica los tokens UP y DOWN, obtiene
// sus mejores asks en paralelo y construye la oportunidad si el spread es
// positivo. Cualquier fallo descarta solo este mercado.
func (s *Scanner) checkMarket(ctx context.Context, m domain.Market) *domain.Opportunity {
	if len(m.Tokens) < 2 {
		return nil
	}

	up, okUp := m.UpToken()
	down, okDown := m.DownToken()
	if !okUp || !okDown {
		return nil
	}

	var priceUp, priceDown float64
	var haveUp, haveDown bool

	// Ambos precios en paralelo; el mercado se juzga cuando los dos fetches
	// completaron (o fallaron).
	g, fetchCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		priceUp, haveUp, err = s.books.FetchBestAsk(fetchCtx, up.TokenID)
		if err != nil {
			slog.Debug("price fetch failed", "token", up.TokenID, "err", err)
			haveUp = false
		}
		return nil
	})
	g.Go(func() error {
		var err error
		priceDown, haveDown, err = s.books.FetchBestAsk(fetchCtx, down.TokenID)
		if err != nil {
			slog.Debug("price fetch failed", "token", down.TokenID, "err", err)
			haveDown = false
		}
		return nil
	})
	g.Wait()

	if !haveUp || !haveDown {
		return nil
	}

	opp := domain.NewOpportunity(m, up, down, priceUp, priceDown)
	if !opp.Viable() {
		return nil
	}
	return &opp
}
