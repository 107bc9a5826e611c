package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/byronbogasai-cmd/gabagool-clone/config"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/adapters/polymarket"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/adapters/storage"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/engine"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/executor"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/notify"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/scanner"
	"github.com/byronbogasai-cmd/gabagool-clone/internal/strategy"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	capital := flag.Float64("capital", 5.0, "starting capital in USDC (first run only)")
	dryRun := flag.Bool("dry-run", false, "monitor and record simulated trades, no real orders")
	summary := flag.Bool("summary", false, "print P&L summary and exit")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	console := notify.NewConsole()

	if *summary {
		ledger, err := storage.OpenLedger(cfg.Storage.LedgerPath, 0)
		if err != nil {
			slog.Error("failed to open ledger", "err", err, "path", cfg.Storage.LedgerPath)
			os.Exit(1)
		}
		console.PrintSummary(ledger.Snapshot())
		return
	}

	slog.Info("gabagool starting",
		"config", *configPath,
		"capital", *capital,
		"interval", cfg.ScanInterval(),
		"min_spread", cfg.Strategy.MinSpread,
		"assets", cfg.Scanner.Assets,
		"dry_run", *dryRun,
	)

	ledger, err := storage.OpenLedger(cfg.Storage.LedgerPath, *capital)
	if err != nil {
		slog.Error("failed to open ledger", "err", err, "path", cfg.Storage.LedgerPath)
		os.Exit(1)
	}

	recorder, err := storage.NewSQLiteRecorder(cfg.Storage.HistoryDSN)
	if err != nil {
		slog.Error("failed to open scan history", "err", err, "dsn", cfg.Storage.HistoryDSN)
		os.Exit(1)
	}
	defer recorder.Close()

	client := polymarket.NewClient(cfg.API.CLOBBase, cfg.API.GammaBase)
	markets := polymarket.NewGammaProvider(client, cfg.Scanner.Assets)
	scan := scanner.New(markets, client, cfg.Scanner.Workers)

	var exec engine.TradeExecutor
	if !*dryRun {
		trading, err := polymarket.NewTradingClient(client, polymarket.Creds{
			APIKey:     cfg.Creds.APIKey,
			Secret:     cfg.Creds.Secret,
			Passphrase: cfg.Creds.Passphrase,
			Address:    cfg.Creds.Address,
		})
		if err != nil {
			slog.Error("failed to create trading client, check POLY_* env vars", "err", err)
			os.Exit(1)
		}
		exec = executor.New(trading)
	}

	eng := engine.New(engine.Config{
		ScanInterval: cfg.ScanInterval(),
		QueueSize:    cfg.Scanner.QueueSize,
		DryRun:       *dryRun,
		Strategy: strategy.Params{
			MinSpread:      cfg.Strategy.MinSpread,
			MaxPositionPct: cfg.Strategy.MaxPositionPct,
			MinBalance:     cfg.Strategy.MinBalanceUSDC,
			FeePerSide:     cfg.Strategy.FeePerSide,
		},
	}, scan, exec, ledger, recorder)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := eng.Run(ctx); err != nil {
		slog.Error("engine exited with error", "err", err)
		os.Exit(1)
	}

	console.PrintSummary(ledger.Snapshot())
	slog.Info("gabagool stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
