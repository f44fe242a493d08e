package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	MarketData  MarketData  `mapstructure:",squash"`
	Narrative   Narrative   `mapstructure:",squash"`
	Pricing     Pricing     `mapstructure:",squash"`
	AutoRefresh AutoRefresh `mapstructure:",squash"`
	Savings     Savings     `mapstructure:",squash"`
	History     History     `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Enabled     bool          `mapstructure:"redis_enabled"`
	Addr        string        `mapstructure:"redis_addr"`
	Password    string        `mapstructure:"redis_password"`
	DB          int           `mapstructure:"redis_db"`
	SnapshotTTL time.Duration `mapstructure:"redis_snapshot_ttl"`
}

// MarketData agrupa os serviços externos de tarifas de concorrentes e eventos
type MarketData struct {
	CompetitorURL string        `mapstructure:"market_competitor_url"`
	EventURL      string        `mapstructure:"market_event_url"`
	APIKey        string        `mapstructure:"market_api_key"`
	Timeout       time.Duration `mapstructure:"market_timeout"`
	RateLimit     float64       `mapstructure:"market_rate_limit"`
	RateBurst     int           `mapstructure:"market_rate_burst"`
}

type Narrative struct {
	URL     string        `mapstructure:"narrative_url"`
	APIKey  string        `mapstructure:"narrative_api_key"`
	Timeout time.Duration `mapstructure:"narrative_timeout"`
}

type Pricing struct {
	Policy            string  `mapstructure:"pricing_policy"`
	FallbackBasePrice float64 `mapstructure:"pricing_fallback_base_price"`
}

type AutoRefresh struct {
	Enabled  bool          `mapstructure:"auto_refresh_enabled"`
	Interval time.Duration `mapstructure:"auto_refresh_interval"`
}

type Savings struct {
	ShiftableFraction     float64 `mapstructure:"savings_shiftable_fraction"`
	DefaultCommissionRate float64 `mapstructure:"savings_default_commission_rate"`
	DefaultBookingShare   float64 `mapstructure:"savings_default_booking_share"`
}

type History struct {
	DefaultWindowDays int `mapstructure:"history_default_window_days"`
	MaxWindowDays     int `mapstructure:"history_max_window_days"`
	BackfillWorkers   int `mapstructure:"history_backfill_workers"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_SNAPSHOT_TTL", "15m")

	viper.SetDefault("MARKET_COMPETITOR_URL", "")
	viper.SetDefault("MARKET_EVENT_URL", "")
	viper.SetDefault("MARKET_API_KEY", "")
	viper.SetDefault("MARKET_TIMEOUT", "8s")    // Timeout por fonte
	viper.SetDefault("MARKET_RATE_LIMIT", 5.0)  // 5 requisições por segundo
	viper.SetDefault("MARKET_RATE_BURST", 2)

	viper.SetDefault("NARRATIVE_URL", "")
	viper.SetDefault("NARRATIVE_API_KEY", "")
	viper.SetDefault("NARRATIVE_TIMEOUT", "20s")

	viper.SetDefault("PRICING_POLICY", "live") // live | demo
	viper.SetDefault("PRICING_FALLBACK_BASE_PRICE", 150.0)

	viper.SetDefault("AUTO_REFRESH_ENABLED", true)
	viper.SetDefault("AUTO_REFRESH_INTERVAL", "5m")

	viper.SetDefault("SAVINGS_SHIFTABLE_FRACTION", 0.25)
	viper.SetDefault("SAVINGS_DEFAULT_COMMISSION_RATE", 0.18)
	viper.SetDefault("SAVINGS_DEFAULT_BOOKING_SHARE", 0.40)

	viper.SetDefault("HISTORY_DEFAULT_WINDOW_DAYS", 14)
	viper.SetDefault("HISTORY_MAX_WINDOW_DAYS", 365)
	viper.SetDefault("HISTORY_BACKFILL_WORKERS", 5)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações que deixariam o motor de preços inconsistente
func (c *Config) Validate() error {
	if c.Pricing.Policy != "live" && c.Pricing.Policy != "demo" {
		return fmt.Errorf("config: política de preços inválida: %q", c.Pricing.Policy)
	}

	if c.Pricing.FallbackBasePrice <= 0 {
		return fmt.Errorf("config: preço base de fallback deve ser positivo")
	}

	if c.Savings.ShiftableFraction < 0 || c.Savings.ShiftableFraction > 1 {
		return fmt.Errorf("config: fração transferível deve estar entre 0 e 1")
	}

	if c.MarketData.Timeout <= 0 {
		return fmt.Errorf("config: timeout das fontes de mercado deve ser positivo, recebido %s", c.MarketData.Timeout)
	}

	if c.AutoRefresh.Enabled && c.AutoRefresh.Interval <= 0 {
		return fmt.Errorf("config: intervalo de atualização automática inválido")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
