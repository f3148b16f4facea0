package config

import (
	"github.com/caarlos0/env/v10"
)

// Config is loaded from the environment. Every Wompi key is required: the
// process refuses to start without them.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	WompiAPIURL       string `env:"WOMPI_API_URL" envDefault:"https://api-sandbox.co.uat.wompi.dev/v1"`
	WompiPublicKey    string `env:"WOMPI_PUBLIC_KEY,required"`
	WompiPrivateKey   string `env:"WOMPI_PRIVATE_KEY,required"`
	WompiIntegrityKey string `env:"WOMPI_INTEGRITY_KEY,required"`
	WompiEventsKey    string `env:"WOMPI_EVENTS_KEY,required"`
	WompiRedirectURL  string `env:"WOMPI_REDIRECT_URL" envDefault:"https://mitienda.com/resultado"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
