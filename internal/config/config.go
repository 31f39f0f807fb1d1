package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RecordsRedis    = "redis"
	RecordsPostgres = "postgres"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string     `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis      Redis      `yaml:"redis"`
	Postgres   Postgres   `yaml:"postgres"`
	Storage    Storage    `yaml:"storage"`
	Game       Game       `yaml:"game"`
	Presence   Presence   `yaml:"presence"`
	Challenge  Challenge  `yaml:"challenge"`
	Socket     Socket     `yaml:"socket"`
	Moderation Moderation `yaml:"moderation"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Postgres struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN" env-default:""`
}

// Storage selects where players, games and moves are kept. Sessions always live in redis.
type Storage struct {
	Records string        `yaml:"records" env:"STORAGE_RECORDS" env-default:"redis"`
	Timeout time.Duration `yaml:"timeout" env:"STORAGE_TIMEOUT" env-default:"5s"`
}

type Game struct {
	GracePeriod      time.Duration `yaml:"grace-period" env:"GAME_GRACE_PERIOD" env-default:"30s"`
	DefaultBoardSize int           `yaml:"default-board-size" env-default:"15"`
	MinBoardSize     int           `yaml:"min-board-size" env-default:"10"`
	MaxBoardSize     int           `yaml:"max-board-size" env-default:"20"`
}

type Presence struct {
	HeartbeatWindow time.Duration `yaml:"heartbeat-window" env:"PRESENCE_HEARTBEAT_WINDOW" env-default:"2m"`
	CleanupInterval time.Duration `yaml:"cleanup-interval" env:"PRESENCE_CLEANUP_INTERVAL" env-default:"60s"`
}

type Challenge struct {
	TTL time.Duration `yaml:"ttl" env:"CHALLENGE_TTL" env-default:"2m"`
}

type Socket struct {
	ReadTimeout    time.Duration `yaml:"read-timeout" env-default:"2m"`
	WriteTimeout   time.Duration `yaml:"write-timeout" env-default:"3s"`
	OutboxSize     int           `yaml:"outbox-size" env-default:"32"`
	OriginPatterns []string      `yaml:"origin-patterns" env:"SOCKET_ORIGIN_PATTERNS"`
}

type Moderation struct {
	BlockedWords []string `yaml:"blocked-words"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
