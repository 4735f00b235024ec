package config

import (
	"fmt"
	"net/url"
	"strings"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateFetchConfig(&config.Fetch); err != nil {
		return fmt.Errorf("fetch config validation failed: %w", err)
	}

	if err := validateIngestionConfig(&config.Ingestion); err != nil {
		return fmt.Errorf("ingestion config validation failed: %w", err)
	}

	if err := validateEventsConfig(&config.Events); err != nil {
		return fmt.Errorf("events config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got read=%v write=%v idle=%v",
			config.ReadTimeout, config.WriteTimeout, config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Host == "" {
		return fmt.Errorf("host is required")
	}

	if config.MaxConns < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConns)
	}

	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		return fmt.Errorf("min connections must be between 0 and %d, got %d", config.MaxConns, config.MinConns)
	}

	return nil
}

func validateFetchConfig(config *FetchConfig) error {
	if config.ParserTimeout <= 0 {
		return fmt.Errorf("parser timeout must be positive, got %v", config.ParserTimeout)
	}

	if config.ValidatorTimeout <= 0 {
		return fmt.Errorf("validator timeout must be positive, got %v", config.ValidatorTimeout)
	}

	if config.HostInterval < 0 {
		return fmt.Errorf("host interval must not be negative, got %v", config.HostInterval)
	}

	if config.MaxBodyBytes < 1024 {
		return fmt.Errorf("max body bytes must be at least 1024, got %d", config.MaxBodyBytes)
	}

	return nil
}

func validateIngestionConfig(config *IngestionConfig) error {
	if config.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}

	if config.QueueSize < 1 {
		return fmt.Errorf("queue size must be at least 1, got %d", config.QueueSize)
	}

	if config.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", config.MaxAttempts)
	}

	if config.RetryBackoff < 0 {
		return fmt.Errorf("retry backoff must not be negative, got %v", config.RetryBackoff)
	}

	if config.SweepInterval <= 0 || config.SweepTimeout <= 0 || config.RunTimeout <= 0 {
		return fmt.Errorf("sweep interval, sweep timeout and run timeout must be positive")
	}

	return nil
}

func validateEventsConfig(config *EventsConfig) error {
	if config.StreamKey == "" {
		return fmt.Errorf("stream key is required")
	}

	if !config.RedisEnabled {
		return nil
	}

	u, err := url.Parse(config.RedisURL)
	if err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
		return fmt.Errorf("redis url must use redis:// or rediss://, got %q", config.RedisURL)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)
	valid := false
	for _, l := range validLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", config.Level, strings.Join(validLevels, ", "))
	}

	format := strings.ToLower(config.Format)
	if format != "json" && format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", config.Format)
	}

	return nil
}
