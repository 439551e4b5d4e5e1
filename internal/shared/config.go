package shared

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"prod"`
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr    string        `env:"METRICS_ADDR"`
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"http://localhost:5000/api/v1"`
	APIRPS         int           `env:"API_RPS" envDefault:"10"`
	CookieTTL      time.Duration `env:"COOKIE_TTL" envDefault:"168h"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
