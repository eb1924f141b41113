package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	History    HistoryConfig    `yaml:"history"`
	Redis      RedisConfig      `yaml:"redis"`
	Database   DatabaseConfig   `yaml:"database"`
	SQLite     SQLiteConfig     `yaml:"sqlite"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds settings of the local browser UI server.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DictionaryConfig holds remote lexical API settings.
type DictionaryConfig struct {
	BaseURL        string        `yaml:"base_url"         env:"DICT_BASE_URL"         env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout        time.Duration `yaml:"timeout"          env:"DICT_TIMEOUT"          env-default:"10s"`
	CacheTTL       time.Duration `yaml:"cache_ttl"        env:"DICT_CACHE_TTL"        env-default:"10m"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"   env:"DICT_RATE_LIMIT_RPS"   env-default:"0"`
	RateLimitBurst int           `yaml:"rate_limit_burst" env:"DICT_RATE_LIMIT_BURST" env-default:"1"`
}

// History storage backends.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// HistoryConfig selects where the recent-search list is persisted.
type HistoryConfig struct {
	Backend string `yaml:"backend"  env:"HISTORY_BACKEND"  env-default:"file"`
	Key     string `yaml:"key"      env:"HISTORY_KEY"      env-default:"dictionaryRecentSearches"`
	DataDir string `yaml:"data_dir" env:"HISTORY_DATA_DIR"`
}

// RedisConfig holds Redis connection settings for the redis history backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"      env:"REDIS_ADDR"      env-default:"localhost:6379"`
	Password string `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	PoolSize int    `yaml:"pool_size" env:"REDIS_POOL_SIZE" env-default:"4"`
}

// DatabaseConfig holds PostgreSQL connection settings for the postgres history backend.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SQLiteConfig holds settings for the sqlite history backend.
// An empty Path resolves to history.db inside the history data dir.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH"`
}

// AudioConfig configures pronunciation playback.
// Player is a command line; the audio URL is appended as the last argument.
// The value "none" disables playback.
type AudioConfig struct {
	Player string `yaml:"player" env:"AUDIO_PLAYER" env-default:"mpv --no-video --really-quiet"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Addr returns the listen address of the local server.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
