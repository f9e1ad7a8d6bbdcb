package config

import (
	"fmt"

	"github.com/caarlos0/env"
)

type config struct {
	Production    bool   `env:"PRODUCTION" envDefault:"false"`
	Port          string `env:"PORT" envDefault:"80"`
	TelegramToken string `env:"TELEGRAM_TOKEN" envDefault:""`
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file"`
	CatalogPath   string `env:"CATALOG_PATH" envDefault:"events.json"`
	PostgresUrl   string `env:"POSTGRES_URL" envDefault:""`
	RedisUrl      string `env:"REDIS_URL" envDefault:""`
	Timezone      string `env:"TIMEZONE" envDefault:"UTC"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func TelegramToken() string {
	return conf.TelegramToken
}

func CatalogSource() string {
	return conf.CatalogSource
}

func CatalogPath() string {
	return conf.CatalogPath
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func Timezone() string {
	return conf.Timezone
}
