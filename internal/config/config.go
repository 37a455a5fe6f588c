package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort      = "5000"
	DefaultDatabase  = "primeLabDB"
	DefaultDBCluster = "cluster0.cnltwph.mongodb.net"
)

type Config struct {
	Port         string
	MongoURI     string
	Database     string
	TokenSecret  string
	StripeKey    string
	LogLevel     string
	Environment  string
	AllowOrigins []string
}

// Load reads .env (if any) and the process environment. It fails when a
// value the service cannot run without is missing.
func Load() (*Config, error) {
	// A missing .env is normal in deployed environments.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:        valueOr(getenv("PORT"), DefaultPort),
		Database:    valueOr(getenv("MONGO_DATABASE"), DefaultDatabase),
		TokenSecret: getenv("ACCESS_TOKEN_SECRET"),
		StripeKey:   getenv("STRIPE_SECRET_KEY"),
		LogLevel:    valueOr(getenv("LOG_LEVEL"), "info"),
		Environment: valueOr(getenv("APP_ENV"), "development"),
	}
	for _, origin := range strings.Split(getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	var missing []string
	cfg.MongoURI = getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		user, pass := getenv("DB_USER"), getenv("DB_PASS")
		if user == "" {
			missing = append(missing, "DB_USER")
		}
		if pass == "" {
			missing = append(missing, "DB_PASS")
		}
		cfg.MongoURI = AtlasURI(user, pass, valueOr(getenv("DB_CLUSTER"), DefaultDBCluster))
	}
	if cfg.TokenSecret == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}
	if cfg.StripeKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return cfg, nil
}

var ErrMissingConfig = errors.New("missing required configuration")

// AtlasURI builds the mongodb+srv connection string for an Atlas cluster.
func AtlasURI(user, pass, cluster string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     cluster,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String()
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
