package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del bot.
type Config struct {
	Strategy StrategyConfig `yaml:"strategy"`
	Scanner  ScannerConfig  `yaml:"scanner"`
	API      APIConfig      `yaml:"api"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`

	// Credenciales del CLOB, solo desde el entorno, nunca del YAML.
	Creds Credentials `yaml:"-"`
}

// StrategyConfig controla el decision engine.
type StrategyConfig struct {
	MinSpread      float64 `yaml:"min_spread"`       // gate sobre el spread bruto
	MaxPositionPct float64 `yaml:"max_position_pct"` // fracción máxima del capital disponible
	MinBalanceUSDC float64 `yaml:"min_balance_usdc"` // safety floor, nunca se arriesga
	FeePerSide     float64 `yaml:"fee_per_side"`     // taker fee estimado por pata
}

// ScannerConfig controla el loop de escaneo.
type ScannerConfig struct {
	IntervalSeconds float64  `yaml:"interval_seconds"`
	Assets          []string `yaml:"assets"`
	QueueSize       int      `yaml:"queue_size"`
	Workers         int      `yaml:"workers"` // workers del scan por mercado; 0 = auto
}

// APIConfig contiene los base URLs de las APIs de Polymarket.
type APIConfig struct {
	CLOBBase  string `yaml:"clob_base"`
	GammaBase string `yaml:"gamma_base"`
}

// StorageConfig controla dónde se persisten los datos.
type StorageConfig struct {
	LedgerPath string `yaml:"ledger_path"` // archivo JSON con el ledger
	HistoryDSN string `yaml:"history_dsn"` // SQLite con el historial de scans, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Credentials son las API keys derivadas del wallet para la auth L2 del CLOB.
type Credentials struct {
	APIKey     string
	Secret     string
	Passphrase string
	Address    string // dirección del wallet, va en el header POLY_ADDRESS
}

// Set devuelve true si las tres credenciales están presentes.
func (c Credentials) Set() bool {
	return c.APIKey != "" && c.Secret != "" && c.Passphrase != ""
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Si el archivo YAML no existe se usan solo los defaults.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	case os.IsNotExist(err):
		// sin archivo: defaults + env
	default:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// ScanInterval devuelve el intervalo de escaneo como time.Duration.
func (c *Config) ScanInterval() time.Duration {
	return time.Duration(c.Scanner.IntervalSeconds * float64(time.Second))
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v, ok := envFloat("MIN_SPREAD"); ok {
		cfg.Strategy.MinSpread = v
	}
	if v, ok := envFloat("MAX_POSITION_SIZE"); ok {
		cfg.Strategy.MaxPositionPct = v
	}
	if v, ok := envFloat("MIN_BALANCE_USDC"); ok {
		cfg.Strategy.MinBalanceUSDC = v
	}
	cfg.Creds = Credentials{
		APIKey:     os.Getenv("POLY_API_KEY"),
		Secret:     os.Getenv("POLY_API_SECRET"),
		Passphrase: os.Getenv("POLY_API_PASSPHRASE"),
		Address:    os.Getenv("POLY_WALLET_ADDRESS"),
	}
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Strategy.MinSpread <= 0 {
		cfg.Strategy.MinSpread = 0.030
	}
	if cfg.Strategy.MaxPositionPct <= 0 {
		cfg.Strategy.MaxPositionPct = 0.80
	}
	if cfg.Strategy.MinBalanceUSDC <= 0 {
		cfg.Strategy.MinBalanceUSDC = 0.50
	}
	if cfg.Strategy.FeePerSide <= 0 {
		cfg.Strategy.FeePerSide = 0.015 // 1.5% por pata = 3% round trip
	}
	if cfg.Scanner.IntervalSeconds <= 0 {
		cfg.Scanner.IntervalSeconds = 1.0
	}
	if len(cfg.Scanner.Assets) == 0 {
		cfg.Scanner.Assets = []string{"BTC", "ETH", "SOL", "XRP"}
	}
	if cfg.Scanner.QueueSize <= 0 {
		cfg.Scanner.QueueSize = 10
	}
	if cfg.API.CLOBBase == "" {
		cfg.API.CLOBBase = "https://clob.polymarket.com"
	}
	if cfg.API.GammaBase == "" {
		cfg.API.GammaBase = "https://gamma-api.polymarket.com"
	}
	if cfg.Storage.LedgerPath == "" {
		cfg.Storage.LedgerPath = "ledger.json"
	}
	if cfg.Storage.HistoryDSN == "" {
		cfg.Storage.HistoryDSN = "gabagool.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
