package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Fetch     FetchConfig     `json:"fetch"`
	Ingestion IngestionConfig `json:"ingestion"`
	Events    EventsConfig    `json:"events"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"120s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host            string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port            int           `json:"port" env:"DB_PORT" default:"5432"`
	User            string        `json:"user" env:"DB_USER" default:"feedhub"`
	Password        string        `json:"-" env:"DB_PASSWORD"`
	Name            string        `json:"name" env:"DB_NAME" default:"feedhub"`
	SSLMode         string        `json:"sslmode" env:"DB_SSLMODE" default:"disable"`
	MaxConns        int           `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns        int           `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `json:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// DSN renders the connection string in URL form understood by pgxpool.ParseConfig.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%s", c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type FetchConfig struct {
	ParserTimeout    time.Duration `json:"parser_timeout" env:"FEED_PARSER_TIMEOUT" default:"30s"`
	ValidatorTimeout time.Duration `json:"validator_timeout" env:"FEED_VALIDATOR_TIMEOUT" default:"10s"`
	HostInterval     time.Duration `json:"host_interval" env:"FEED_HOST_INTERVAL" default:"1s"`
	MaxBodyBytes     int64         `json:"max_body_bytes" env:"FEED_MAX_BODY_BYTES" default:"10485760"`
	UserAgent        string        `json:"user_agent" env:"FEED_USER_AGENT" default:"feedhub/1.0 (+https://github.com/feedhub/feedhub)"`
}

type IngestionConfig struct {
	Workers       int           `json:"workers" env:"INGESTION_WORKERS" default:"4"`
	QueueSize     int           `json:"queue_size" env:"INGESTION_QUEUE_SIZE" default:"256"`
	MaxAttempts   int           `json:"max_attempts" env:"INGESTION_MAX_ATTEMPTS" default:"3"`
	RetryBackoff  time.Duration `json:"retry_backoff" env:"INGESTION_RETRY_BACKOFF" default:"60s"`
	SweepInterval time.Duration `json:"sweep_interval" env:"INGESTION_SWEEP_INTERVAL" default:"1h"`
	SweepTimeout  time.Duration `json:"sweep_timeout" env:"INGESTION_SWEEP_TIMEOUT" default:"10m"`
	RunTimeout    time.Duration `json:"run_timeout" env:"INGESTION_RUN_TIMEOUT" default:"5m"`
}

type EventsConfig struct {
	RedisEnabled bool   `json:"redis_enabled" env:"EVENTS_REDIS_ENABLED" default:"false"`
	RedisURL     string `json:"redis_url" env:"EVENTS_REDIS_URL" default:"redis://localhost:6379/0"`
	StreamKey    string `json:"stream_key" env:"EVENTS_STREAM_KEY" default:"feedhub:events:feeds"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig reads .env when present, then the environment, falling back to tag defaults.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
