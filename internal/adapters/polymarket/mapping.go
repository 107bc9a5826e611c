package polymarket

import "github.com/byronbogasai-cmd/gabagool-clone/internal/domain"

// mapGammaMarkets convierte los DTOs de Gamma a domain.Market.
func mapGammaMarkets(raw []gammaMarket) []domain.Market {
	markets := make([]domain.Market, 0, len(raw))
	for _, r := range raw {
		markets = append(markets, mapGammaMarket(r))
	}
	return markets
}

func mapGammaMarket(r gammaMarket) domain.Market {
	m := domain.Market{
		ConditionID: r.ConditionID,
		Question:    r.Question,
		Tokens:      make([]domain.Token, 0, len(r.Tokens)),
	}
	for _, t := range r.Tokens {
		m.Tokens = append(m.Tokens, domain.Token{
			TokenID: t.TokenID,
			Outcome: t.Outcome,
		})
	}
	return m
}

// mapBook convierte la respuesta de GET /book a domain.OrderBook.
func mapBook(tokenID string, r bookResponse) domain.OrderBook {
	ob := domain.OrderBook{
		TokenID: tokenID,
		Asks:    make([]domain.BookEntry, 0, len(r.Asks)),
	}
	for _, a := range r.Asks {
		ob.Asks = append(ob.Asks, domain.BookEntry{
			Price: domain.ParsePrice(a.Price),
			Size:  domain.ParsePrice(a.Size),
		})
	}
	return ob
}
