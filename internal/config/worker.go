package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type WorkerRedisConfig struct {
	Addr     string
	Password string
	DB       int
	Stream   string
	Group    string
	Consumer string
}

type QueueConfig struct {
	ClaimInterval time.Duration
}

type LoggingConfig struct {
	Level string
}

type WorkerConfig struct {
	Environment string
	Redis       WorkerRedisConfig
	Queues      QueueConfig
	Logging     LoggingConfig
}

func LoadWorker() (*WorkerConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("worker")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")
	v.SetEnvPrefix("PROFILEDESK_WORKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setWorkerDefaults(v)

	var cfg WorkerConfig
	if err := read(v, &cfg); err != nil {
		return nil, err
	}
	if cfg.Queues.ClaimInterval <= 0 {
		return nil, fmt.Errorf("queues.claiminterval must be positive, got %s", cfg.Queues.ClaimInterval)
	}
	return &cfg, nil
}

func setWorkerDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.stream", "profiledesk:activity")
	v.SetDefault("redis.group", "activity-auditors")
	v.SetDefault("redis.consumer", "worker-1")

	v.SetDefault("queues.claiminterval", "10s")

	v.SetDefault("logging.level", "info")
}
