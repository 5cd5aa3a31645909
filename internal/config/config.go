package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB         DBConfig
	Server     ServerConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Pagination PaginationConfig
}

type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// Enabled reports whether a cache should be used at all.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type DBConfig struct {
	URL             string
	AccessKey       string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type PaginationConfig struct {
	// CountMode is "exact" or "estimate".
	CountMode string
}

// ErrMissingDatabase is returned when DATABASE_URL or DATABASE_ACCESS_KEY is unset.
var ErrMissingDatabase = errors.New("DATABASE_URL and DATABASE_ACCESS_KEY must be set")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.body_limit", 4*1024*1024)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 60)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("pagination.count_mode", "exact")
}

// LoadConfig reads .env, then config.yaml (optional), then the environment.
// Nested keys map to upper snake case variables (redis.address -> REDIS_ADDRESS).
func LoadConfig() (*Config, error) {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		DB: DBConfig{
			URL:             v.GetString("database.url"),
			AccessKey:       v.GetString("database.access_key"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime") * time.Second,
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  v.GetDuration("server.idle_timeout") * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Pagination: PaginationConfig{
			CountMode: v.GetString("pagination.count_mode"),
		},
	}

	// The deployment contract names these two variables explicitly.
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DB.URL = dbURL
	}
	if accessKey := os.Getenv("DATABASE_ACCESS_KEY"); accessKey != "" {
		cfg.DB.AccessKey = accessKey
	}
	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = n
	}

	return cfg, nil
}

// Validate fails when the storage endpoint or its access key is missing.
func (c *Config) Validate() error {
	if c.DB.URL == "" || c.DB.AccessKey == "" {
		return ErrMissingDatabase
	}
	return nil
}

// GetDSN returns the database URL with the access key as password when the URL carries none.
func (c *Config) GetDSN() (string, error) {
	u, err := url.Parse(c.DB.URL)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid DATABASE_URL: expected postgres://user@host/db")
	}
	user := "postgres"
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return u.String(), nil
		}
		if name := u.User.Username(); name != "" {
			user = name
		}
	}
	u.User = url.UserPassword(user, c.DB.AccessKey)
	return u.String(), nil
}
