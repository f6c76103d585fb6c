package redis

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds the connection, pool and per-cache TTL settings of a Client
type Config struct {
	Host     string
	Port     int
	Password string
	Database int

	// pool sizing; zero leaves the go-redis default
	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration

	// CacheTTLs maps cache names to entry lifetimes; DefaultCacheTTL covers the rest
	CacheTTLs       map[string]time.Duration
	DefaultCacheTTL time.Duration
}

// NewRedisConfig returns a local-instance configuration with a 15 minute default TTL
func NewRedisConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		Password:        "",
		Database:        0,
		MinIdleConns:    5,
		MaxIdleConns:    10,
		MaxActive:       100,
		MaxRetries:      3,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolTimeout:     4 * time.Second,
		CacheTTLs:       make(map[string]time.Duration),
		DefaultCacheTTL: 15 * time.Minute,
	}
}

// WithHost sets the Redis server host
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort sets the Redis server port
func (c *Config) WithPort(port int) *Config {
	if port < 1 || port > 65535 {
		panic(fmt.Sprintf("invalid port: %d, must be between 1 and 65535", port))
	}
	c.Port = port
	return c
}

// WithPassword sets the Redis server password
func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

// WithDatabase sets the Redis database number
func (c *Config) WithDatabase(database int) *Config {
	if database < 0 || database > 15 {
		panic(fmt.Sprintf("invalid database: %d, must be between 0 and 15", database))
	}
	c.Database = database
	return c
}

// WithReadTimeout sets the timeout for socket reads
func (c *Config) WithReadTimeout(readTimeout time.Duration) *Config {
	if readTimeout < 0 {
		panic(fmt.Sprintf("invalid read timeout: %v, must be non-negative", readTimeout))
	}
	c.ReadTimeout = readTimeout
	return c
}

// WithCacheTTL sets the TTL for a specific cache name
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid cache TTL: %v, must be non-negative", ttl))
	}
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

// Addr returns the host:port address of the server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// TTLFor returns the TTL configured for a cache name, or the default one
func (c *Config) TTLFor(cacheName string) time.Duration {
	if ttl, ok := c.CacheTTLs[cacheName]; ok {
		return ttl
	}
	return c.DefaultCacheTTL
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1 and 65535", c.Port)
	}
	if c.Database < 0 || c.Database > 15 {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}
	for name, value := range map[string]int{
		"min idle connections":   c.MinIdleConns,
		"max idle connections":   c.MaxIdleConns,
		"max active connections": c.MaxActive,
		"max retries":            c.MaxRetries,
	} {
		if value < 0 {
			return fmt.Errorf("invalid %s: %d, must be non-negative", name, value)
		}
	}
	for name, value := range map[string]time.Duration{
		"dial timeout":  c.DialTimeout,
		"read timeout":  c.ReadTimeout,
		"write timeout": c.WriteTimeout,
		"pool timeout":  c.PoolTimeout,
	} {
		if value < 0 {
			return fmt.Errorf("invalid %s: %v, must be non-negative", name, value)
		}
	}
	return nil
}
