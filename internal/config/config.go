package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// SchedulerConfig - периодическое обновление списка монет.
// Нулевое значение Disabled означает, что планировщик включён.
type SchedulerConfig struct {
	Disabled bool          `yaml:"disabled" env:"SCHEDULER_DISABLED"`
	Interval time.Duration `yaml:"interval" env-default:"5m"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"text"`                // text|json
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"crypto"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" env:"COINGECKO_BASE_URL" env-default:"https://api.coingecko.com/api/v3"`
	APIKey    string        `yaml:"api_key" env:"COINGECKO_API_KEY"`
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"crypto-market-dashboard/1.0"`
}

// DashboardConfig - что загружаем и как показываем
type DashboardConfig struct {
	TopCoins int    `yaml:"top_coins" env-default:"50"`
	Currency string `yaml:"currency" env-default:"usd"`
	PageSize int    `yaml:"page_size" env-default:"6"`
}

type TelegramConfig struct {
	Enabled             bool          `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token               string        `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	LongPollTimeout     time.Duration `yaml:"long_poll_timeout" env-default:"10s"`
	DispatchPeriod      time.Duration `yaml:"dispatch_period" env-default:"1m"`
	DefaultAutoInterval int           `yaml:"default_auto_interval" env-default:"10"` // minutes
}

// LoadConfig - путь к файлу берётся из флага -c или CONFIG_PATH
func LoadConfig() (*Config, error) {
	return Load(fetchConfigPath())
}

// Load читает файл (если путь задан), затем переменные окружения.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, err
		}
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
