package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	App   AppConfig   `envPrefix:"APP_"`
	HTTP  HTTPConfig  `envPrefix:"HTTP_"`
	DB    DBConfig    `envPrefix:"DB_"`
	MySQL MySQLConfig `envPrefix:"MYSQL_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
	Auth  AuthConfig  `envPrefix:"AUTH_"`
	S3    S3Config    `envPrefix:"S3_"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS" envDefault:"300"`
}

type AppConfig struct {
	Env  string `env:"ENV"  envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// echo size syntax: 512K, 10M. Uploads share the limit.
	BodyLimit string `env:"BODY_LIMIT" envDefault:"10M"`
}

type DBConfig struct {
	Driver      string `env:"DRIVER"       envDefault:"mysql"`
	SQLitePath  string `env:"SQLITE_PATH"  envDefault:"radsafe.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

type MySQLConfig struct {
	Host string `env:"HOST" envDefault:"mysql"`
	Port string `env:"PORT" envDefault:"3306"`
	DB   string `env:"DB"   envDefault:"radsafe"`
	User string `env:"USER" envDefault:"radsafe"`
	Pass string `env:"PASS" envDefault:"radsafe"`
}

// Idempotency keys are only enforced when redis is enabled.
type RedisConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Addr    string `env:"ADDR"    envDefault:"redis:6379"`
	DB      int    `env:"DB"      envDefault:"0"`
}

type AuthConfig struct {
	Enabled      bool          `env:"ENABLED"       envDefault:"false"`
	Username     string        `env:"USERNAME"`
	PasswordHash string        `env:"PASSWORD_HASH"`
	JWTSecret    string        `env:"JWT_SECRET"`
	Issuer       string        `env:"ISSUER"        envDefault:"radsafe-backend"`
	TokenTTL     time.Duration `env:"TOKEN_TTL"     envDefault:"8h"`
}

// S3Config is optional; an empty bucket disables POST /upload.
type S3Config struct {
	Bucket           string `env:"BUCKET"`
	Region           string `env:"REGION"            envDefault:"ap-southeast-1"`
	AccessKeyID      string `env:"ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"SECRET_ACCESS_KEY"`
	Endpoint         string `env:"ENDPOINT"`
	CloudFrontDomain string `env:"CLOUDFRONT_DOMAIN"`
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.App.Port == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DB.Driver {
	case DriverMySQL:
		if c.MySQL.Host == "" || c.MySQL.Port == "" || c.MySQL.DB == "" || c.MySQL.User == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQL.Port); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQL.Port, err)
		}
	case DriverSQLite:
		if c.DB.SQLitePath == "" {
			return errors.New("missing DB_SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if n, err := bytes.Parse(c.HTTP.BodyLimit); err != nil || n <= 0 {
		return fmt.Errorf("invalid HTTP_BODY_LIMIT %q", c.HTTP.BodyLimit)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	if c.Auth.Enabled {
		if c.Auth.Username == "" || c.Auth.PasswordHash == "" {
			return errors.New("AUTH_ENABLED needs AUTH_USERNAME and AUTH_PASSWORD_HASH")
		}
		if len(c.Auth.JWTSecret) < 16 {
			return errors.New("AUTH_JWT_SECRET must be at least 16 bytes")
		}
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) UploadEnabled() bool { return c.S3.Bucket != "" }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQL.Host, c.MySQL.Port) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQL.User, c.MySQL.Pass, c.mysqlAddr(), c.MySQL.DB)
}
