package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration, loadable from a yaml file with
// environment-variable overrides.
type Config struct {
	// Environment selects logging behavior: "development" or "production".
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP holds the API server settings.
	HTTP struct {
		// Addr is the address and port the HTTP server listens on.
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout bounds reading the entire request, including the body.
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout bounds reading the request headers.
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout bounds writing the response.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout bounds keep-alive waits between requests.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the per-request processing deadline.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes limits the size of request headers; 0 uses the
		// net/http default.
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath is where Prometheus metrics are served.
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database holds the PostgreSQL connection settings.
	Database struct {
		// Username for database authentication.
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication.
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address.
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number.
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection.
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to.
		DatabaseName string `env:"DATABASE_NAME" env-default:"bodycomp" yaml:"name"`
		// MaxOpenConnections limits the number of open connections.
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the idle connection pool size.
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused.
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle.
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key material for API authentication. Keys are PEM
	// blocks, typically injected through environment variables.
	JWT struct {
		// PublicKey verifies incoming bearer tokens.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens; only the jwt dev command needs it.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Intake holds scan-submission settings.
	Intake struct {
		// MassToleranceKg is the slack allowed when checking that fat, lean
		// and bone masses do not exceed the total mass.
		MassToleranceKg float64 `env:"INTAKE_MASS_TOLERANCE_KG" env-default:"0.5" yaml:"massToleranceKg"`
		// CalibrationMaxAttempts bounds retries of a calibration job.
		CalibrationMaxAttempts int `env:"INTAKE_CALIBRATION_MAX_ATTEMPTS" env-default:"3" yaml:"calibrationMaxAttempts"`
		// CalibrationJobPeriod is the uniqueness window for calibration jobs:
		// within it, at most one job per user sits in the queue.
		CalibrationJobPeriod time.Duration `env:"INTAKE_CALIBRATION_JOB_PERIOD" env-default:"1m" yaml:"calibrationJobPeriod"` //nolint: lll
	} `yaml:"intake"`

	// Worker holds background queue settings.
	Worker struct {
		// MaxWorkers caps concurrent calibration jobs.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is how long to wait for in-flight requests on shutdown.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config at configPath and applies environment overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
