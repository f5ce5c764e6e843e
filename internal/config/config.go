package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	PickStoreMemory = "memory"
	PickStoreRedis  = "redis"
	PickStoreSQLite = "sqlite"
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"POKEGRID_LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `yaml:"http-port" env:"POKEGRID_HTTP_PORT" env-default:"9090"`
	Redis             Redis         `yaml:"redis"`
	PickStore         string        `yaml:"pick-store" env:"POKEGRID_PICK_STORE" env-default:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"POKEGRID_SQLITE_PATH" env-default:"pokegrid.db"`
	SessionTTL        time.Duration `yaml:"session-ttl" env:"POKEGRID_SESSION_TTL" env-default:"48h"`
	Game              Game          `yaml:"game"`
	OTel              OTel          `yaml:"otel"`
}

type Redis struct {
	Host string `yaml:"host" env:"POKEGRID_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"POKEGRID_REDIS_PORT" env-default:"6379"`
}

type Game struct {
	// ScoringMode is "live" (totals follow global counts) or "frozen".
	ScoringMode       string `yaml:"scoring-mode" env:"POKEGRID_SCORING_MODE" env-default:"live"`
	AllowOverwrite    bool   `yaml:"allow-overwrite" env:"POKEGRID_ALLOW_OVERWRITE" env-default:"false"`
	ScoreOnPriorCount bool   `yaml:"score-on-prior-count" env:"POKEGRID_SCORE_ON_PRIOR_COUNT" env-default:"false"`
}

type OTel struct {
	Enabled  bool   `yaml:"enabled" env:"POKEGRID_OTEL_ENABLED" env-default:"true"`
	Endpoint string `yaml:"endpoint" env:"POKEGRID_OTEL_ENDPOINT"`
}

// MustLoad - load all configurations in config.yml file, env vars take precedence.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
