package storage

// ledger.go: persistencia del ledger de capital y P&L.
//
// El ledger es el único estado mutable del proceso. Cada mutación pasa por
// Record bajo mutex: leer archivo completo → aplicar → escribir completo.
// Un solo consumer escribe en el diseño base, pero el mutex preserva el
// invariante "append atómico" si se añaden consumers.

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
)

const maxMarketLen = 80

// LedgerStore implementa ports.LedgerStore sobre un archivo JSON.
type LedgerStore struct {
	mu     sync.Mutex
	path   string
	ledger domain.Ledger
}

// OpenLedger carga (o crea) el ledger en la ruta dada. En el primer arranque
// siembra initial_capital = current_capital = startingCapital.
func OpenLedger(path string, startingCapital float64) (*LedgerStore, error) {
	ledger, err := loadLedger(path)
	if err != nil {
		return nil, err
	}

	s := &LedgerStore{path: path, ledger: ledger}

	if s.ledger.InitialCapital == 0 {
		s.ledger.InitialCapital = startingCapital
		s.ledger.CurrentCapital = startingCapital
		if err := s.save(); err != nil {
			return nil, err
		}
		slog.Info("ledger initialized", "capital", fmt.Sprintf("$%.4f", startingCapital))
	}

	return s, nil
}

// loadLedger lee el archivo, devolviendo un ledger en cero si no existe.
func loadLedger(path string) (domain.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Ledger{}, nil
		}
		return domain.Ledger{}, fmt.Errorf("storage.loadLedger: read %q: %w", path, err)
	}
	var ledger domain.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return domain.Ledger{}, fmt.Errorf("storage.loadLedger: parse %q: %w", path, err)
	}
	return ledger, nil
}

// save escribe el ledger completo a disco. Llamar con el mutex tomado.
func (s *LedgerStore) save() error {
	data, err := json.MarshalIndent(s.ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("storage.LedgerStore: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("storage.LedgerStore: write %q: %w", s.path, err)
	}
	return nil
}

// Capital devuelve el capital actual.
func (s *LedgerStore) Capital() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.CurrentCapital
}

// Record agrega un intento de trade y actualiza los agregados. En éxito el
// capital se incrementa por el profit estimado (compounding); en fallo el
// capital no cambia pero el intento queda registrado igual.
func (s *LedgerStore) Record(market string, profitEst float64, success bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.TotalTrades++
	if success {
		s.ledger.WinningTrades++
		s.ledger.TotalProfit += profitEst
		s.ledger.CurrentCapital += profitEst
	}

	s.ledger.Trades = append(s.ledger.Trades, domain.TradeRecord{
		TS:           time.Now().UTC().Format(time.RFC3339),
		Market:       domain.TruncateQuestion(market, "", maxMarketLen),
		ProfitEst:    profitEst,
		Success:      success,
		CapitalAfter: s.ledger.CurrentCapital,
	})

	if err := s.save(); err != nil {
		return err
	}

	slog.Info("P&L",
		"capital", fmt.Sprintf("$%.4f", s.ledger.CurrentCapital),
		"return", fmt.Sprintf("%+.2f%%", s.ledger.TotalReturn()),
		"win_rate", fmt.Sprintf("%.1f%% (%d/%d)", s.ledger.WinRate(), s.ledger.WinningTrades, s.ledger.TotalTrades),
	)
	return nil
}

// Snapshot devuelve una copia del ledger para reporting.
func (s *LedgerStore) Snapshot() domain.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.ledger
	out.Trades = make([]domain.TradeRecord, len(s.ledger.Trades))
	copy(out.Trades, s.ledger.Trades)
	return out
}
