package config

import (
	"fmt"
	"time"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Store    StoreConfig    `env-prefix:"STORE_"`
	Database DatabaseConfig `env-prefix:"DB_"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8080"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type GRPCConfig struct {
	Addr             string        `env:"ADDR" env-default:":50051"`
	KeepaliveTime    time.Duration `env:"KEEPALIVE_TIME" env-default:"2h"`
	KeepaliveTimeout time.Duration `env:"KEEPALIVE_TIMEOUT" env-default:"20s"`
	MaxConnIdle      time.Duration `env:"MAX_CONN_IDLE" env-default:"5m"`
}

type StoreConfig struct {
	Backend  string `env:"BACKEND" env-default:"memory"`
	Seed     bool   `env:"SEED" env-default:"true"`
	SeedFile string `env:"SEED_FILE"`
}

type DatabaseConfig struct {
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	MaxConns      int32  `env:"MAX_CONNS" env-default:"3"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"3"`
	Migrate       bool   `env:"MIGRATE" env-default:"true"`
}

func (c DatabaseConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Store.Backend == BackendPostgres && c.Database.MaxConns < 1 {
		return fmt.Errorf("db max conns must be positive, got %d", c.Database.MaxConns)
	}

	return nil
}
