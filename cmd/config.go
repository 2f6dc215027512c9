package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"http_port"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	WorkerConcurrency int `mapstructure:"worker_concurrency"`

	PricingCacheTTL time.Duration `mapstructure:"pricing_cache_ttl"`

	PricingSweepSpec  string        `mapstructure:"pricing_sweep_spec"`
	PricingSweepLimit int           `mapstructure:"pricing_sweep_limit"`
	VoucherSweepSpec  string        `mapstructure:"voucher_sweep_spec"`
	VoucherSweepAhead time.Duration `mapstructure:"voucher_sweep_ahead"`

	PaymentEndpoint string        `mapstructure:"payment_endpoint"`
	PaymentAPIKey   string        `mapstructure:"payment_api_key"`
	PaymentTimeout  time.Duration `mapstructure:"payment_timeout"`
}

// LoadConfig reads .env from the working directory when present, then the
// process environment. Keys are the upper-cased mapstructure names, e.g.
// DB_HOST or PRICING_CACHE_TTL.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"http_port":           "8080",
		"db_host":             "localhost",
		"db_port":             "5432",
		"db_user":             "postgres",
		"db_password":         "",
		"db_name":             "fulfillment",
		"db_sslmode":          "disable",
		"redis_addr":          "localhost:6379",
		"redis_password":      "",
		"redis_db":            0,
		"log_level":           "info",
		"log_file":            "",
		"worker_concurrency":  10,
		"pricing_cache_ttl":   10 * time.Minute,
		"pricing_sweep_spec":  "@every 5m",
		"pricing_sweep_limit": 200,
		"voucher_sweep_spec":  "0 6 * * *",
		"voucher_sweep_ahead": 7 * 24 * time.Hour,
		"payment_endpoint":    "http://localhost:8090/v1/payment-links",
		"payment_api_key":     "",
		"payment_timeout":     10 * time.Second,
	}
	// SetDefault also registers the key, which AutomaticEnv needs for
	// Unmarshal to see environment overrides.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func (c Config) validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("HTTP_PORT is empty"))
	}
	if c.DBHost == "" || c.DBName == "" {
		errList = append(errList, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.RedisAddr == "" {
		errList = append(errList, errors.New("REDIS_ADDR is empty"))
	}
	if c.PricingSweepLimit < 1 {
		errList = append(errList, fmt.Errorf("PRICING_SWEEP_LIMIT must be positive, got %d", c.PricingSweepLimit))
	}
	if c.WorkerConcurrency < 1 {
		errList = append(errList, fmt.Errorf("WORKER_CONCURRENCY must be positive, got %d", c.WorkerConcurrency))
	}
	return errors.Join(errList...)
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
