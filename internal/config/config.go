package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server      Server
	TelegramBot TelegramBot
	LeagueAPI   LeagueAPI
	Store       Store
	Predictions Predictions
}

type Server struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type LeagueAPI struct {
	BaseURL         string        `envconfig:"FPL_BASE_URL"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"6h"`
}

type Store struct {
	// PostgresDSN switches the store to Postgres when set; the in-memory
	// snapshot store is used otherwise.
	PostgresDSN string `envconfig:"POSTGRES_DSN"`
}

type Predictions struct {
	CSVPath string `envconfig:"PREDICTIONS_CSV" default:"predicted_points.csv"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
