package storage

// sqlite.go: historial de scans para auditoría offline.
//
// Estrategia:
//   - `cycles`: una fila ligera por ciclo (mercados escaneados, candidatos,
//     mejor spread). Permite reconstruir qué vio el bot y cuándo.
//   - `opportunities`: UNA fila por mercado (UPSERT) con first_seen/last_seen
//     y el peak de spread observado. Solo se escriben las mejores de cada
//     ciclo; las descartadas no aportan señal como histórico.
//   - Prune automático al arrancar: cycles > 30d, opportunities > 14d.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cycles (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    scanned_at  DATETIME NOT NULL,
    markets     INTEGER  NOT NULL DEFAULT 0,
    candidates  INTEGER  NOT NULL DEFAULT 0,
    best_spread REAL     NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS opportunities (
    condition_id TEXT PRIMARY KEY,
    question     TEXT,
    up_ask       REAL    NOT NULL DEFAULT 0,
    down_ask     REAL    NOT NULL DEFAULT 0,
    spread       REAL    NOT NULL DEFAULT 0,
    peak_spread  REAL    NOT NULL DEFAULT 0,
    times_seen   INTEGER NOT NULL DEFAULT 0,
    first_seen   DATETIME NOT NULL,
    last_seen    DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cycles_at ON cycles(scanned_at DESC);
CREATE INDEX IF NOT EXISTS idx_opp_last  ON opportunities(last_seen DESC);
`

const (
	retentionCycles = 30 * 24 * time.Hour
	retentionOpps   = 14 * 24 * time.Hour
)

// SQLiteRecorder implementa ports.ScanRecorder usando SQLite (pure Go, sin CGo).
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder abre (o crea) la base de datos en la ruta dada.
// Aplica el schema y limpia datos antiguos.
func NewSQLiteRecorder(dsn string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteRecorder: open %q: %w", dsn, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteRecorder: apply schema: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	r.pruneOld(context.Background())
	return r, nil
}

// SaveCycle persiste el resumen del ciclo y hace upsert de la mejor
// oportunidad si la hubo.
func (r *SQLiteRecorder) SaveCycle(ctx context.Context, marketsScanned, candidates int, best *domain.Opportunity) error {
	now := time.Now().UTC()

	bestSpread := 0.0
	if best != nil {
		bestSpread = best.Spread
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO cycles (scanned_at, markets, candidates, best_spread) VALUES (?, ?, ?, ?)`,
		now, marketsScanned, candidates, bestSpread,
	); err != nil {
		return fmt.Errorf("storage.SaveCycle: insert cycle: %w", err)
	}

	if best == nil {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO opportunities
			(condition_id, question, up_ask, down_ask, spread, peak_spread,
			 times_seen, first_seen, last_seen)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(condition_id) DO UPDATE SET
			question    = excluded.question,
			up_ask      = excluded.up_ask,
			down_ask    = excluded.down_ask,
			spread      = excluded.spread,
			peak_spread = MAX(peak_spread, excluded.spread),
			times_seen  = times_seen + 1,
			last_seen   = excluded.last_seen`,
		best.ConditionID, best.Question, best.PriceUp, best.PriceDown,
		best.Spread, best.Spread, now, now,
	); err != nil {
		return fmt.Errorf("storage.SaveCycle: upsert opportunity: %w", err)
	}

	return nil
}

// pruneOld borra filas fuera de la ventana de retención.
func (r *SQLiteRecorder) pruneOld(ctx context.Context) {
	now := time.Now().UTC()
	r.db.ExecContext(ctx, `DELETE FROM cycles WHERE scanned_at < ?`, now.Add(-retentionCycles))
	r.db.ExecContext(ctx, `DELETE FROM opportunities WHERE last_seen < ?`, now.Add(-retentionOpps))
}

// Close cierra la conexión a la base de datos limpiamente.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
