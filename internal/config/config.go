package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	HTTP    HTTP
	Storage Storage
	Kafka   Kafka
	Payout  Payout
	AI      AI
}

type App struct {
	Name         string `env:"APP_NAME" envDefault:"track-market"`
	Version      string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor   bool   `env:"LOG_NO_COLOR" envDefault:"false"`
	ProbeAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddr  string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
	MaxBodyBytes      int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"67108864"`
}

type Payout struct {
	SenderName string `env:"PAYOUT_SENDER_NAME" envDefault:"Низоленко Артём"`
}

// AI is read for parity with the deployment environment; no component calls
// a generative model.
type AI struct {
	APIKey string `env:"OPENAI_API_KEY" json:"-"`
}

func (a AI) Configured() bool {
	return a.APIKey != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("config.validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("HTTP_MAX_BODY_BYTES must be positive, got %d", c.HTTP.MaxBodyBytes)
	}

	if c.Storage.Timeout <= 0 {
		return fmt.Errorf("S3_TIMEOUT must be positive, got %s", c.Storage.Timeout)
	}

	if c.Kafka.WriteTimeout <= 0 {
		return fmt.Errorf("KAFKA_WRITE_TIMEOUT must be positive, got %s", c.Kafka.WriteTimeout)
	}

	if c.Kafka.Enabled() && c.Kafka.WithdrawalTopic == "" {
		return fmt.Errorf("KAFKA_WITHDRAWAL_TOPIC is required when KAFKA_BROKERS is set")
	}

	return nil
}
