package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DashboardConfig struct {
	InitDelay time.Duration
	Timezone  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SecurityConfig struct {
	FormSecret   string
	FormTokenTTL time.Duration
}

type EventsConfig struct {
	Enabled bool
	Stream  string
	Buffer  int
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	App              DashboardConfig
	Redis            RedisConfig
	Security         SecurityConfig
	Events           EventsConfig
	AllowCORSOrigins []string
}

// Location resolves App.Timezone; empty and "Local" mean the host zone.
func (c DashboardConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func Load() (*AppConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("PROFILEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg AppConfig
	if err := read(v, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("app.initdelay", "100ms")
	v.SetDefault("app.timezone", "Local")

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("security.formsecret", "")
	v.SetDefault("security.formtokenttl", "2h")

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.stream", "profiledesk:activity")
	v.SetDefault("events.buffer", 64)

	v.SetDefault("allowcorsorigins", []string{})
}

func read(v *viper.Viper, out any) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	if err := v.Unmarshal(out, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// loadDotEnv exports variables from ./.env when present. Real environment
// variables win over the file.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
