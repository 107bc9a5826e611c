package engine

// engine.go: pipeline producer/consumer del bot.
//
// Dos loops independientes conectados por un canal acotado:
//   - producer: escanea, encola la mejor oportunidad del ciclo (put
//     bloqueante: un canal lleno frena el escaneo, los precios viejos no
//     se acumulan), duerme el intervalo y repite.
//   - consumer: desencola con espera acotada (timeout = "no hay trabajo"),
//     decide contra el capital actual del ledger, ejecuta (o simula en
//     dry-run) y registra el intento. Record es el único punto de mutación
//     del ledger.
// Ambos loops observan la cancelación del contexto en el borde de cada
// iteración; las requests en vuelo no se abortan, solo no se repiten.

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/ports"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/scanner"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/strategy"
)

const dequeueWait = 5 * time.Second

// OpportunityScanner produce la mejor oportunidad de un ciclo de escaneo.
type OpportunityScanner interface {
	ScanOnce(ctx context.Context) scanner.ScanResult
}

// TradeExecutor ejecuta ambas patas de un trade aceptado.
type TradeExecutor interface {
	Execute(ctx context.Context, opp domain.Opportunity, decision domain.TradeDecision) domain.ExecutionResult
}

// Config controla el pipeline.
type Config struct {
	ScanInterval time.Duration
	QueueSize    int
	DryRun       bool
	Strategy     strategy.Params
}

// Engine orquesta el scanner y el executor como dos loops indefinidos.
type Engine struct {
	cfg      Config
	scanner  OpportunityScanner
	executor TradeExecutor
	ledger   ports.LedgerStore
	recorder ports.ScanRecorder // opcional, puede ser nil
}

// New crea un Engine con todas las dependencias inyectadas.
// recorder puede ser nil si no se persiste historial de scans.
func New(cfg Config, sc OpportunityScanner, ex TradeExecutor, ledger ports.LedgerStore, recorder ports.ScanRecorder) *Engine {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10
	}
	return &Engine{cfg: cfg, scanner: sc, executor: ex, ledger: ledger, recorder: recorder}
}

// Run ejecuta ambos loops hasta que el contexto se cancele.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("engine starting",
		"interval", e.cfg.ScanInterval,
		"queue", e.cfg.QueueSize,
		"dry_run", e.cfg.DryRun,
	)

	queue := make(chan domain.Opportunity, e.cfg.QueueSize)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		e.produceLoop(ctx, queue)
	}()
	go func() {
		defer wg.Done()
		e.consumeLoop(ctx, queue)
	}()
	wg.Wait()

	slog.Info("engine stopped")
	return nil
}

// produceLoop escanea y encola hasta el shutdown.
func (e *Engine) produceLoop(ctx context.Context, queue chan<- domain.Opportunity) {
	for {
		if ctx.Err() != nil {
			return
		}

		res := e.scanner.ScanOnce(ctx)

		if e.recorder != nil {
			var best *domain.Opportunity
			if res.Found {
				best = &res.Best
			}
			if err := e.recorder.SaveCycle(ctx, res.MarketsScanned, res.Candidates, best); err != nil {
				slog.Warn("scan history write failed", "err", err)
			}
		}

		if res.Found {
			select {
			case queue <- res.Best:
			case <-ctx.Done():
				return
			}
		}

		select {
		case <-time.After(e.cfg.ScanInterval):
		case <-ctx.Done():
			return
		}
	}
}

// consumeLoop desencola, decide, ejecuta y registra hasta el shutdown.
func (e *Engine) consumeLoop(ctx context.Context, queue <-chan domain.Opportunity) {
	for {
		var opp domain.Opportunity
		select {
		case opp = <-queue:
		case <-time.After(dequeueWait):
			continue // sin trabajo, chequear shutdown y seguir
		case <-ctx.Done():
			return
		}

		e.handle(ctx, opp)
	}
}

// handle procesa una oportunidad desencolada: decide, ejecuta, registra.
func (e *Engine) handle(ctx context.Context, opp domain.Opportunity) {
	capital := e.ledger.Capital()
	decision := strategy.Decide(opp, capital, e.cfg.Strategy)

	if !decision.Execute {
		slog.Debug("skipped", "reason", decision.Reason)
		return
	}

	slog.Info("TRADE", "reason", decision.Reason)

	market := domain.TruncateQuestion(opp.Question, opp.ConditionID, 80)

	if e.cfg.DryRun {
		slog.Info("[DRY RUN] would trade",
			"size_up", decision.SizeUp,
			"size_down", decision.SizeDown,
		)
		e.record(market, decision.NetProfitEst, true)
		return
	}

	result := e.executor.Execute(ctx, opp, decision)
	e.record(market, decision.NetProfitEst, result.Success())
}

// record es el único punto de mutación del ledger.
func (e *Engine) record(market string, profitEst float64, success bool) {
	if err := e.ledger.Record(market, profitEst, success); err != nil {
		slog.Error("ledger write failed", "err", err)
	}
}
