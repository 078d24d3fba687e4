package redis

import (
	"fmt"
	"time"
)

// Config holds the Redis connection settings.
type Config struct {
	Host     string
	Port     int
	Password string
	Database int
	// MinIdleConns is the minimum number of idle connections kept open.
	MinIdleConns int
	// MaxIdleConns is the maximum number of idle connections kept in the pool.
	MaxIdleConns int
	// MaxActive is the maximum number of connections that can be established.
	MaxActive int
	// MaxRetries is the maximum number of retries for failed commands.
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	// DefaultTTL applies when a cache write does not specify its own TTL.
	DefaultTTL time.Duration
}

// NewConfig creates a Redis configuration with default values.
func NewConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		Password:     "",
		Database:     0,
		MinIdleConns: 5,
		MaxIdleConns: 10,
		MaxActive:    100,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
		DefaultTTL:   1 * time.Hour,
	}
}

// WithHost sets the Redis server host.
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort sets the Redis server port.
func (c *Config) WithPort(port int) *Config {
	if port < 1 || port > 65535 {
		panic(fmt.Sprintf("invalid port: %d, must be between 1 and 65535", port))
	}
	c.Port = port
	return c
}

// WithPassword sets the Redis server password.
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase sets the Redis database number.
func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

// WithDefaultTTL sets the default cache TTL.
func (c *Config) WithDefaultTTL(ttl time.Duration) *Config {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid TTL: %v, must be non-negative", ttl))
	}
	c.DefaultTTL = ttl
	return c
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid database: %d", c.Database)
	}
	return nil
}
