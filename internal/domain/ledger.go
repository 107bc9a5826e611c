package domain

// Ledger es el estado de capital y P&L del bot. Es la única entidad mutable
// de larga vida; se persiste completa en un archivo JSON.
type Ledger struct {
	InitialCapital float64       `json:"initial_capital"`
	CurrentCapital float64       `json:"current_capital"`
	TotalTrades    int           `json:"total_trades"`
	WinningTrades  int           `json:"winning_trades"`
	TotalProfit    float64       `json:"total_profit"`
	Trades         []TradeRecord `json:"trades"`
}

// TradeRecord es una entrada append-only del historial de trades.
type TradeRecord struct {
	TS           string  `json:"ts"` // ISO-8601 UTC
	Market       string  `json:"market"`
	ProfitEst    float64 `json:"profit_est"`
	Success      bool    `json:"success"`
	CapitalAfter float64 `json:"capital_after"`
}

// WinRate devuelve el porcentaje de trades ganadores (0-100).
func (l Ledger) WinRate() float64 {
	if l.TotalTrades == 0 {
		return 0
	}
	return float64(l.WinningTrades) / float64(l.TotalTrades) * 100
}

// TotalReturn devuelve el retorno total en porcentaje sobre el capital inicial.
func (l Ledger) TotalReturn() float64 {
	if l.InitialCapital == 0 {
		return 0
	}
	return (l.CurrentCapital/l.InitialCapital - 1) * 100
}
