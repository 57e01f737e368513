package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Store    StoreConfig    `toml:"store"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Checkout CheckoutConfig `toml:"checkout"`
	Log      LogConfig      `toml:"log"`
}

type StoreConfig struct {
	Backend     string `toml:"backend"`
	SQLitePath  string `toml:"sqlite_path"`
	PostgresURL string `toml:"postgres_url"`
	// OwnerID scopes the cart in the postgres backend.
	OwnerID string `toml:"owner_id"`
	// Key is the slot name in the sqlite backend.
	Key string `toml:"key"`
}

type CatalogConfig struct {
	Path string `toml:"path"`
}

type CheckoutConfig struct {
	WhatsAppPhone string `toml:"whatsapp_phone"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend:    BackendSQLite,
			SQLitePath: "storefront.db",
			OwnerID:    "local",
			Key:        "cart",
		},
		Catalog: CatalogConfig{
			Path: "catalog.toml",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load overlays the TOML file at path (if any) and STOREFRONT_* environment variables on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("os.ReadFile: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("toml.Unmarshal: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("applyEnv: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"STOREFRONT_STORE_BACKEND":  &cfg.Store.Backend,
		"STOREFRONT_SQLITE_PATH":    &cfg.Store.SQLitePath,
		"STOREFRONT_POSTGRES_URL":   &cfg.Store.PostgresURL,
		"STOREFRONT_OWNER_ID":       &cfg.Store.OwnerID,
		"STOREFRONT_STORE_KEY":      &cfg.Store.Key,
		"STOREFRONT_CATALOG_PATH":   &cfg.Catalog.Path,
		"STOREFRONT_WHATSAPP_PHONE": &cfg.Checkout.WhatsAppPhone,
		"STOREFRONT_LOG_LEVEL":      &cfg.Log.Level,
	}
	for name, target := range strs {
		if v, ok := os.LookupEnv(name); ok {
			*target = v
		}
	}

	if v, ok := os.LookupEnv("STOREFRONT_LOG_DEVELOPMENT"); ok {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_LOG_DEVELOPMENT[%s] is not a bool: %w", v, err)
		}
		cfg.Log.Development = dev
	}

	return nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case BackendSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("store.sqlite_path is empty"))
		}
		if c.Store.Key == "" {
			errs = append(errs, errors.New("store.key is empty"))
		}
	case BackendPostgres:
		if c.Store.PostgresURL == "" {
			errs = append(errs, errors.New("store.postgres_url is empty"))
		}
		if c.Store.OwnerID == "" {
			errs = append(errs, errors.New("store.owner_id is empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend[%s] is not supported", c.Store.Backend))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// NewLogger builds a production or development zap logger at the configured level.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("zapcore.ParseLevel: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("zc.Build: %w", err)
	}
	return logger, nil
}
