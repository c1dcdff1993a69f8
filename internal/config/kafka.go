package config

import "time"

type Kafka struct {
	Brokers         []string      `env:"KAFKA_BROKERS" envSeparator:","`
	WithdrawalTopic string        `env:"KAFKA_WITHDRAWAL_TOPIC" envDefault:"withdrawals"`
	WriteTimeout    time.Duration `env:"KAFKA_WRITE_TIMEOUT" envDefault:"2s"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}
