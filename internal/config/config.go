package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Debug   bool    `yaml:"debug" env:"DEBUG"`
	Server  Server  `yaml:"server"`
	Limiter Limiter `yaml:"limiter"`
	CORS    CORS    `yaml:"cors"`
	DB      DB      `yaml:"db"`
	JWT     JWT     `yaml:"jwt"`
	TMDB    TMDB    `yaml:"tmdb"`
}

type Server struct {
	Port string `yaml:"port" env:"SERVER_PORT" env-default:"8000"`
	Host string `yaml:"host" env:"SERVER_HOST" env-default:"localhost"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
}

type CORS struct {
	AllowedOrigin string `yaml:"allowed_origin" env:"CORS_ALLOWED_ORIGIN" env-default:"http://localhost:3000"`
}

type DB struct {
	Dsn             string        `yaml:"dsn" env:"DB_DSN" env-required:"true"`
	MaxConns        int           `yaml:"max_conns" env-default:"25"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"10m"`
}

type JWT struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TTL    time.Duration `yaml:"ttl" env-default:"24h"`
}

type TMDB struct {
	BaseURL string        `yaml:"base_url" env:"TMDB_BASE_URL" env-default:"https://api.themoviedb.org/3"`
	APIKey  string        `yaml:"api_key" env:"TMDB_API_KEY" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

func MustLoad(configPath string) *Config {
	var cfg Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic(fmt.Errorf("config file %s not found", configPath))
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic(err)
	}

	return &cfg
}
