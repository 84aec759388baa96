package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable consumed by the service.
	EnvPrefix = "MAKERSTECH"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MAKERSTECH_DB_DSN"
	EnvDBHost = "MAKERSTECH_DB_HOST"
	EnvDBUser = "MAKERSTECH_DB_USER"
	EnvDBName = "MAKERSTECH_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Identity     IdentityConfig
	Session      SessionConfig
	Chat         ChatConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MAKERSTECH_APP_ENV" required:"true"`
	Port         string `envconfig:"MAKERSTECH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MAKERSTECH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MAKERSTECH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MAKERSTECH_DB_DSN"`
	Driver string `envconfig:"MAKERSTECH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MAKERSTECH_DB_HOST"`
	LegacyPort     int    `envconfig:"MAKERSTECH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MAKERSTECH_DB_USER"`
	LegacyPassword string `envconfig:"MAKERSTECH_DB_PASSWORD"`
	LegacyName     string `envconfig:"MAKERSTECH_DB_NAME"`
	LegacySSLMode  string `envconfig:"MAKERSTECH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MAKERSTECH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAKERSTECH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MAKERSTECH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MAKERSTECH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MAKERSTECH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MAKERSTECH_REDIS_ADDR"`
	Password     string        `envconfig:"MAKERSTECH_REDIS_PASSWORD"`
	DB           int           `envconfig:"MAKERSTECH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MAKERSTECH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MAKERSTECH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MAKERSTECH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MAKERSTECH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MAKERSTECH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// IdentityConfig describes the external identity provider whose tokens the
// admin session exchange accepts. Credential semantics live with the
// provider; this service only verifies signatures and issuer.
type IdentityConfig struct {
	Secret string `envconfig:"MAKERSTECH_IDENTITY_SECRET" required:"true"`
	Issuer string `envconfig:"MAKERSTECH_IDENTITY_ISSUER" required:"true"`
}

type SessionConfig struct {
	TTLMinutes int `envconfig:"MAKERSTECH_SESSION_TTL_MINUTES" default:"720"`
}

// TTL returns the admin session lifetime.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type ChatConfig struct {
	WebhookURL string `envconfig:"MAKERSTECH_CHAT_WEBHOOK_URL" required:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MAKERSTECH_CORS_ALLOWED_ORIGINS"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MAKERSTECH_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
