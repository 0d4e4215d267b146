package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/companyinfo-backend/internal/data/db"
	"github.com/yungbote/companyinfo-backend/internal/http/middleware"
	"github.com/yungbote/companyinfo-backend/internal/observability"
	"github.com/yungbote/companyinfo-backend/internal/platform/envutil"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"github.com/yungbote/companyinfo-backend/internal/services"
)

type Config struct {
	Port            string
	DB              db.Config
	Seed            bool
	Auth            services.AuthConfig
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
	Otel            observability.OtelConfig

	// Login throttling; RedisAddr empty keeps counters in process.
	LoginMaxAttempts int
	LoginWindow      time.Duration
	RedisAddr        string
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:            envutil.String("PORT", "8080", log),
		DB:              LoadDBConfig(log),
		Seed:            envutil.Bool("DB_SEED", true, log),
		CORSOrigins:     envutil.List("CORS_ALLOWED_ORIGINS", middleware.DefaultAllowedOrigins, log),
		ShutdownTimeout: time.Duration(envutil.Int("SHUTDOWN_TIMEOUT_SECONDS", 10, log)) * time.Second,
		MetricsEnabled:  envutil.Bool("METRICS_ENABLED", false, log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "companyinfo", log),
			Environment: envutil.String("APP_ENV", "development", log),
			Version:     envutil.String("APP_VERSION", "", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(envutil.Secret("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1, log),
		},
	}

	cfg.LoginMaxAttempts = envutil.Int("LOGIN_MAX_ATTEMPTS", 5, log)
	cfg.LoginWindow = time.Duration(envutil.Int("LOGIN_WINDOW_SECONDS", 300, log)) * time.Second
	cfg.RedisAddr = envutil.String("REDIS_ADDR", "", log)

	hash, err := adminPasswordHash(log)
	if err != nil {
		return Config{}, err
	}
	cfg.Auth = services.AuthConfig{
		JWTSecretKey:      envutil.Secret("JWT_SECRET_KEY", "", log),
		Issuer:            envutil.String("JWT_ISSUER", "localhost", log),
		Audience:          envutil.String("JWT_AUDIENCE", "localhost", log),
		AccessTTL:         time.Duration(envutil.Int("ACCESS_TOKEN_TTL", 1800, log)) * time.Second,
		AdminUsername:     envutil.String("ADMIN_USERNAME", "admin", log),
		AdminPasswordHash: hash,
	}
	if cfg.Auth.JWTSecretKey == "" {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY must be set")
	}
	return cfg, nil
}

// LoadDBConfig reads only the store settings, for tools that do not serve
// HTTP.
func LoadDBConfig(log *logger.Logger) db.Config {
	return db.Config{
		Driver:           envutil.String("DB_DRIVER", db.DriverPostgres, log),
		PostgresHost:     envutil.String("POSTGRES_HOST", "localhost", log),
		PostgresPort:     envutil.String("POSTGRES_PORT", "5432", log),
		PostgresUser:     envutil.String("POSTGRES_USER", "postgres", log),
		PostgresPassword: envutil.Secret("POSTGRES_PASSWORD", "", log),
		PostgresName:     envutil.String("POSTGRES_NAME", "companyinfo", log),
		PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
		SQLitePath:       envutil.String("SQLITE_PATH", "", log),
		MaxOpenConns:     envutil.Int("DB_MAX_OPEN_CONNS", 25, log),
		MaxIdleConns:     envutil.Int("DB_MAX_IDLE_CONNS", 5, log),
	}
}

// adminPasswordHash prefers a precomputed bcrypt hash; a plaintext password is
// hashed once here so it is not kept around.
func adminPasswordHash(log *logger.Logger) ([]byte, error) {
	if h := envutil.Secret("ADMIN_PASSWORD_HASH", "", log); h != "" {
		return []byte(h), nil
	}
	pw := envutil.Secret("ADMIN_PASSWORD", "", log)
	if strings.TrimSpace(pw) == "" {
		return nil, fmt.Errorf("one of ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
	}
	return services.HashPassword(pw)
}
