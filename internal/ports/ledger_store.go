package ports

import "github.com/byronbogasai-cmd/gabagool-clone/internal/domain"

// LedgerStore es el único estado mutable del proceso: capital y P&L.
type LedgerStore interface {
	// Capital devuelve el capital actual disponible para sizing.
	Capital() float64

	// Record agrega un intento de ejecución al ledger y actualiza los
	// agregados de forma atómica. En éxito el capital se incrementa por el
	// profit estimado (compounding); en fallo queda igual.
	Record(market string, profitEst float64, success bool) error

	// Snapshot devuelve una copia del ledger para reporting.
	Snapshot() domain.Ledger
}
