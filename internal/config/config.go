package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// MongoConfig holds document-store connection values. The Atlas-style
// user/pass/cluster/database quartet builds the srv URI; URI wins when set
// directly (local development, tests against mongod).
type MongoConfig struct {
	URI      string
	User     string
	Password string
	Cluster  string
	Database string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// CheckoutConfig holds payment-provider settings.
type CheckoutConfig struct {
	StripeSecretKey string
	SuccessURL      string
	CancelURL       string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "loanlink-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("PORT", "5000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGO_URI"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
			Cluster:  os.Getenv("DB_CLUSTER"),
			Database: getEnv("DB_NAME", "loanlink"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 10),
		},
		Checkout: CheckoutConfig{
			StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			SuccessURL:      getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/dashboard/my-loans?success=true"),
			CancelURL:       getEnv("CHECKOUT_CANCEL_URL", "http://localhost:5173/dashboard/my-loans?canceled=true"),
		},
	}

	if cfg.Mongo.URI == "" && cfg.Mongo.Cluster == "" {
		return nil, fmt.Errorf("document store not configured: set MONGO_URI or DB_USER/DB_PASS/DB_CLUSTER/DB_NAME")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ConnectionURI resolves the mongodb connection string.
func (m MongoConfig) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s.mongodb.net/%s?retryWrites=true&w=majority",
		url.QueryEscape(m.User),
		url.QueryEscape(m.Password),
		m.Cluster,
		m.Database,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
